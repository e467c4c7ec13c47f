// Package dto provides data transfer objects for the signing endpoints.
package dto

import (
	validation "github.com/jellydator/validation"
)

const (
	// MaxMessageLength bounds the message size in characters.
	MaxMessageLength = 1 << 20

	// MaxSignatureLength bounds the claimed signature in hex characters.
	MaxSignatureLength = 256
)

// SignRequest contains the message to sign.
//
// Emptiness is not checked here: the use case reports a missing message only
// after a missing secret, and that precedence is part of the HTTP contract.
type SignRequest struct {
	Message string `json:"message"`
}

// Validate checks if the sign request is within size limits.
func (r *SignRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Message, validation.Length(0, MaxMessageLength)),
	)
}

// VerifyRequest contains a message and the signature claimed for it.
type VerifyRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"` // Hex-encoded
}

// Validate checks if the verify request is within size limits.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Message, validation.Length(0, MaxMessageLength)),
		validation.Field(&r.Signature, validation.Length(0, MaxSignatureLength)),
	)
}

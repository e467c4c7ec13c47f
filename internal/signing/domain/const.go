// Package domain defines the message authentication domain: secrets, tags,
// algorithms and the errors reported by signing and verification.
package domain

import (
	"fmt"
	"strings"
)

// Algorithm identifies the keyed-hash construction used to derive tags.
//
// Exactly one algorithm is active per process. Tags produced under one
// algorithm never verify under another, so changing SIGN_ALGORITHM invalidates
// every tag issued before the change.
type Algorithm string

const (
	// HMACSHA256 is HMAC over SHA-256. It produces 32-byte tags and is the default.
	HMACSHA256 Algorithm = "hmac-sha256"

	// HMACSHA512 is HMAC over SHA-512. It produces 64-byte tags.
	HMACSHA512 Algorithm = "hmac-sha512"

	// HMACSHA3256 is HMAC over SHA3-256. It produces 32-byte tags.
	HMACSHA3256 Algorithm = "hmac-sha3-256"
)

// ParseAlgorithm converts a configuration value into an Algorithm.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(value))); alg {
	case HMACSHA256, HMACSHA512, HMACSHA3256:
		return alg, nil
	default:
		return "", fmt.Errorf(
			"%w: %q (valid options: hmac-sha256, hmac-sha512, hmac-sha3-256)",
			ErrUnsupportedAlgorithm,
			value,
		)
	}
}

// TagSize returns the length in bytes of tags produced by the algorithm.
func (a Algorithm) TagSize() int {
	switch a {
	case HMACSHA512:
		return 64
	default:
		return 32
	}
}

// Package usecase implements the signing application layer.
//
// The use case binds the stateless MAC service to the process-wide secret that
// was loaded at startup. The secret is injected at construction so tests can
// run with arbitrary keys without touching process configuration.
//
// Message bytes are used exactly as received: no trimming, normalization or
// re-encoding happens between the transport and the MAC, otherwise a tag
// produced by one caller would fail to verify for another.
package usecase

import (
	"context"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
	signingService "github.com/gen-relay/genlayer-relay/internal/signing/service"
)

type signingUseCase struct {
	macService signingService.MACService
	secret     signingDomain.Secret
}

// NewSigningUseCase creates a SigningUseCase bound to secret.
func NewSigningUseCase(macService signingService.MACService, secret signingDomain.Secret) SigningUseCase {
	return &signingUseCase{
		macService: macService,
		secret:     secret,
	}
}

// CheckSecret reports whether a secret is configured.
func (s *signingUseCase) CheckSecret(ctx context.Context) error {
	if s.secret.IsEmpty() {
		return signingDomain.ErrSecretMissing
	}
	return nil
}

// Sign computes the signature of message.
func (s *signingUseCase) Sign(ctx context.Context, message string) (*signingDomain.SignedMessage, error) {
	tag, err := s.macService.Sign([]byte(message), s.secret)
	if err != nil {
		return nil, err
	}

	return &signingDomain.SignedMessage{
		Message:   message,
		Signature: tag,
		Algorithm: s.macService.Algorithm(),
	}, nil
}

// Verify checks a hex signature against message.
func (s *signingUseCase) Verify(
	ctx context.Context,
	message, signature string,
) (*signingDomain.Verification, error) {
	valid, err := s.macService.Verify([]byte(message), signature, s.secret)
	if err != nil {
		return nil, err
	}

	return &signingDomain.Verification{
		Message: message,
		Valid:   valid,
	}, nil
}

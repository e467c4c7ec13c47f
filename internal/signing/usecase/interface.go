package usecase

import (
	"context"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

// SigningUseCase signs messages and verifies signatures with the process secret.
type SigningUseCase interface {
	// CheckSecret returns ErrSecretMissing when no secret is configured.
	// Handlers call it before decoding the request so a missing secret is
	// reported ahead of any request error.
	CheckSecret(ctx context.Context) error

	// Sign returns the message together with its lowercase-hex signature.
	// Returns ErrSecretMissing when no secret is configured and
	// ErrMessageMissing for an empty message, in that order of precedence.
	Sign(ctx context.Context, message string) (*signingDomain.SignedMessage, error)

	// Verify checks signature against message. A mismatch is reported through
	// Verification.Valid, not as an error.
	Verify(ctx context.Context, message, signature string) (*signingDomain.Verification, error)
}

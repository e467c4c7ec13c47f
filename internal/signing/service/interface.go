// Package service implements keyed-hash message authentication and the
// loading of the process-wide signing secret.
package service

import (
	"context"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

// MACService signs messages and verifies claimed tags. Implementations hold no
// mutable state and are safe for concurrent use.
type MACService interface {
	// Sign returns the tag for message under secret.
	// Returns ErrSecretMissing or ErrMessageMissing for empty inputs.
	Sign(message []byte, secret signingDomain.Secret) (signingDomain.Tag, error)

	// Verify reports whether claimedTag (hex) authenticates message under secret.
	// A mismatch is (false, nil); only missing or malformed inputs are errors.
	Verify(message []byte, claimedTag string, secret signingDomain.Secret) (bool, error)

	// Algorithm returns the construction used to derive tags.
	Algorithm() signingDomain.Algorithm
}

// KMSKeeper decrypts KMS-wrapped key material. *secrets.Keeper implements it.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for KMS key URIs.
type KMSService interface {
	// OpenKeeper opens a KMSKeeper for keyURI (e.g., gcpkms://, awskms://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}

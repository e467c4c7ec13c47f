package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

// LoadSecret builds the process-wide Secret from the SIGN_SECRET value.
//
// An empty raw value yields an empty Secret: the service still starts and
// each sign or verify call reports ErrSecretMissing. When keyURI is empty the
// raw bytes are the key. Otherwise raw is base64 ciphertext that is decrypted
// with the keeper opened for keyURI, and any failure is returned so startup
// can abort.
func LoadSecret(
	ctx context.Context,
	raw string,
	keyURI string,
	kms KMSService,
) (signingDomain.Secret, error) {
	if raw == "" {
		return signingDomain.Secret{}, nil
	}

	if keyURI == "" {
		return signingDomain.NewSecret([]byte(raw)), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return signingDomain.Secret{}, fmt.Errorf("%w: invalid base64 ciphertext", signingDomain.ErrSecretDecryption)
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return signingDomain.Secret{}, fmt.Errorf("%w: %w", signingDomain.ErrSecretDecryption, err)
	}
	defer func() { _ = keeper.Close() }()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return signingDomain.Secret{}, fmt.Errorf("%w: %w", signingDomain.ErrSecretDecryption, err)
	}

	secret := signingDomain.NewSecret(key)
	zero(key)

	return secret, nil
}

// zero overwrites sensitive data in memory with zeros.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	signingService "github.com/gen-relay/genlayer-relay/internal/signing/service"
)

const (
	minSecretSize = 16
	maxSecretSize = 128
)

// RunGenerateSecret generates a random signing secret and prints it as a
// SIGN_SECRET assignment. The secret is hex encoded so it can be pasted into a
// .env file unchanged.
//
// When kmsKeyURI is set the secret is encrypted with that key and printed as
// base64 ciphertext together with KMS_KEY_URI, the format LoadSecret expects.
// For local development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunGenerateSecret(
	ctx context.Context,
	kmsService signingService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	size int,
	kmsKeyURI string,
) error {
	if size < minSecretSize || size > maxSecretSize {
		return fmt.Errorf("size must be between %d and %d bytes, got: %d", minSecretSize, maxSecretSize, size)
	}

	raw := make([]byte, size)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	secret := []byte(hex.EncodeToString(raw))

	defer func() {
		clear(raw)
		clear(secret)
	}()

	if kmsKeyURI == "" {
		_, err := fmt.Fprintf(writer, "SIGN_SECRET=\"%s\"\n", secret)
		return err
	}

	logger.Info("encrypting secret with KMS")

	keeperInterface, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeperInterface.Close(); closeErr != nil {
			logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	// Type assert to get Encrypt method (needed for encryption)
	keeper, ok := keeperInterface.(interface {
		Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	})
	if !ok {
		return fmt.Errorf("KMS keeper does not support encryption")
	}

	ciphertext, err := keeper.Encrypt(ctx, secret)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret with KMS: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, err = fmt.Fprintf(writer, "SIGN_SECRET=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))
	return err
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	signingUseCase "github.com/gen-relay/genlayer-relay/internal/signing/usecase"
)

// ErrSignatureInvalid is returned by RunVerify after reporting a mismatch so the
// process exits non-zero.
var ErrSignatureInvalid = errors.New("signature is not valid")

// RunVerify checks signature against message with the configured secret.
// The outcome is written before ErrSignatureInvalid is returned for a mismatch.
//
// Requirements: SIGN_SECRET must be set.
func RunVerify(
	ctx context.Context,
	useCase signingUseCase.SigningUseCase,
	logger *slog.Logger,
	writer io.Writer,
	message string,
	signature string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	verification, err := useCase.Verify(ctx, message, signature)
	if err != nil {
		return fmt.Errorf("failed to verify signature: %w", err)
	}

	logger.Debug("signature verified", slog.Bool("valid", verification.Valid))

	if format == "json" {
		err = writeJSON(writer, map[string]any{
			"message": verification.Message,
			"valid":   verification.Valid,
		})
	} else if verification.Valid {
		_, err = fmt.Fprintln(writer, "Signature is valid")
	} else {
		_, err = fmt.Fprintln(writer, "Signature is NOT valid")
	}
	if err != nil {
		return err
	}

	if !verification.Valid {
		return ErrSignatureInvalid
	}
	return nil
}

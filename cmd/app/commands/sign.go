package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	signingUseCase "github.com/gen-relay/genlayer-relay/internal/signing/usecase"
)

// RunSign signs message with the configured secret and writes the hex signature.
//
// Requirements: SIGN_SECRET must be set.
func RunSign(
	ctx context.Context,
	useCase signingUseCase.SigningUseCase,
	logger *slog.Logger,
	writer io.Writer,
	message string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	signed, err := useCase.Sign(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}

	logger.Debug("message signed", slog.String("algorithm", string(signed.Algorithm)))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"message":   signed.Message,
			"signature": signed.Signature.String(),
			"algorithm": string(signed.Algorithm),
		})
	}

	_, err = fmt.Fprintln(writer, signed.Signature.String())
	return err
}

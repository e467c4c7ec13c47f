package usecase

import (
	"context"
	"time"

	"github.com/gen-relay/genlayer-relay/internal/metrics"
	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

const metricsDomain = "signing"

// signingUseCaseWithMetrics decorates SigningUseCase with metrics instrumentation.
type signingUseCaseWithMetrics struct {
	next    SigningUseCase
	metrics metrics.BusinessMetrics
}

// NewSigningUseCaseWithMetrics wraps a SigningUseCase with metrics recording.
func NewSigningUseCaseWithMetrics(useCase SigningUseCase, m metrics.BusinessMetrics) SigningUseCase {
	return &signingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CheckSecret is not instrumented; the following Sign or Verify call is.
func (s *signingUseCaseWithMetrics) CheckSecret(ctx context.Context) error {
	return s.next.CheckSecret(ctx)
}

// Sign records metrics for message signing operations.
func (s *signingUseCaseWithMetrics) Sign(
	ctx context.Context,
	message string,
) (*signingDomain.SignedMessage, error) {
	start := time.Now()
	signed, err := s.next.Sign(ctx, message)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, metricsDomain, "message_sign", status)
	s.metrics.RecordDuration(ctx, metricsDomain, "message_sign", time.Since(start), status)

	return signed, err
}

// Verify records metrics for signature verification. Successful calls are
// labelled "valid" or "invalid" by outcome.
func (s *signingUseCaseWithMetrics) Verify(
	ctx context.Context,
	message, signature string,
) (*signingDomain.Verification, error) {
	start := time.Now()
	verification, err := s.next.Verify(ctx, message, signature)

	status := "error"
	if err == nil {
		status = "invalid"
		if verification != nil && verification.Valid {
			status = "valid"
		}
	}

	s.metrics.RecordOperation(ctx, metricsDomain, "message_verify", status)
	s.metrics.RecordDuration(ctx, metricsDomain, "message_verify", time.Since(start), status)

	return verification, err
}

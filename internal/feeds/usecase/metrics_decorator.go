package usecase

import (
	"context"
	"time"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
	"github.com/gen-relay/genlayer-relay/internal/metrics"
)

const metricsDomain = "feeds"

// feedUseCaseWithMetrics decorates FeedUseCase with metrics instrumentation.
type feedUseCaseWithMetrics struct {
	next    FeedUseCase
	metrics metrics.BusinessMetrics
}

// NewFeedUseCaseWithMetrics wraps a FeedUseCase with metrics recording.
func NewFeedUseCaseWithMetrics(useCase FeedUseCase, m metrics.BusinessMetrics) FeedUseCase {
	return &feedUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *feedUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	f.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Prices records metrics for price fetches.
func (f *feedUseCaseWithMetrics) Prices(
	ctx context.Context,
	ids, vsCurrencies string,
) (feedsDomain.Prices, error) {
	start := time.Now()
	prices, err := f.next.Prices(ctx, ids, vsCurrencies)
	f.record(ctx, "price_fetch", start, err)
	return prices, err
}

// PriceOptions is not instrumented; it only reads configuration.
func (f *feedUseCaseWithMetrics) PriceOptions(ctx context.Context) *feedsDomain.PriceOptions {
	return f.next.PriceOptions(ctx)
}

// Weather records metrics for weather fetches.
func (f *feedUseCaseWithMetrics) Weather(ctx context.Context, city string) (*feedsDomain.Weather, error) {
	start := time.Now()
	weather, err := f.next.Weather(ctx, city)
	f.record(ctx, "weather_fetch", start, err)
	return weather, err
}

// Random records metrics for randomness fetches.
func (f *feedUseCaseWithMetrics) Random(ctx context.Context) (*feedsDomain.Randomness, error) {
	start := time.Now()
	randomness, err := f.next.Random(ctx)
	f.record(ctx, "random_fetch", start, err)
	return randomness, err
}

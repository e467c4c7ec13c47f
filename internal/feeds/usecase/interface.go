package usecase

import (
	"context"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

// FeedUseCase relays third-party feeds with caching.
type FeedUseCase interface {
	// Prices returns prices for comma separated asset ids in comma separated vs
	// currencies. Empty arguments fall back to the configured defaults.
	Prices(ctx context.Context, ids, vsCurrencies string) (feedsDomain.Prices, error)

	// PriceOptions returns the configured assets and currencies.
	PriceOptions(ctx context.Context) *feedsDomain.PriceOptions

	// Weather returns the current weather for city.
	Weather(ctx context.Context, city string) (*feedsDomain.Weather, error)

	// Random returns the latest public randomness round.
	Random(ctx context.Context) (*feedsDomain.Randomness, error)
}

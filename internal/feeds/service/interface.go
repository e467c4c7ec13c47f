package service

import (
	"context"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

// PriceClient fetches spot prices.
type PriceClient interface {
	// FetchSimplePrice returns prices for comma separated ids in comma separated vs currencies.
	FetchSimplePrice(ctx context.Context, ids, vsCurrencies string) (feedsDomain.Prices, error)
}

// WeatherClient fetches current weather.
type WeatherClient interface {
	// FetchWeather returns the current weather for city. Returns ErrWeatherAPIKeyMissing
	// when no API key is configured, checked before the city.
	FetchWeather(ctx context.Context, city string) (*feedsDomain.Weather, error)
}

// RandomnessClient fetches public randomness.
type RandomnessClient interface {
	// FetchLatest returns the latest randomness round.
	FetchLatest(ctx context.Context) (*feedsDomain.Randomness, error)
}

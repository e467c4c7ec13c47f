package dto

import (
	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
	"github.com/gen-relay/genlayer-relay/internal/httputil"
)

// PricesResponse is returned by GET /prices. Prices are encoded as decimal strings.
type PricesResponse struct {
	Status string             `json:"status"`
	Data   feedsDomain.Prices `json:"data"`
}

// MapPricesToResponse converts prices into their response shape.
func MapPricesToResponse(prices feedsDomain.Prices) PricesResponse {
	if prices == nil {
		prices = feedsDomain.Prices{}
	}
	return PricesResponse{Status: httputil.StatusOK, Data: prices}
}

// PriceOptionsResponse is returned by GET /prices/options.
type PriceOptionsResponse struct {
	Status string   `json:"status"`
	Crypto []string `json:"crypto"`
	FX     []string `json:"fx"`
}

// MapPriceOptionsToResponse converts price options into their response shape.
func MapPriceOptionsToResponse(options *feedsDomain.PriceOptions) PriceOptionsResponse {
	crypto, fx := options.Crypto, options.FX
	if crypto == nil {
		crypto = []string{}
	}
	if fx == nil {
		fx = []string{}
	}
	return PriceOptionsResponse{Status: httputil.StatusOK, Crypto: crypto, FX: fx}
}

// WeatherResponse is returned by GET /weather.
type WeatherResponse struct {
	Status string               `json:"status"`
	Data   *feedsDomain.Weather `json:"data"`
}

// MapWeatherToResponse converts weather into its response shape.
func MapWeatherToResponse(weather *feedsDomain.Weather) WeatherResponse {
	return WeatherResponse{Status: httputil.StatusOK, Data: weather}
}

// RandomResponse is returned by GET /random.
type RandomResponse struct {
	Status string `json:"status"`
	Random string `json:"random"`
	Round  uint64 `json:"round"`
}

// MapRandomnessToResponse converts a randomness round into its response shape.
func MapRandomnessToResponse(randomness *feedsDomain.Randomness) RandomResponse {
	return RandomResponse{
		Status: httputil.StatusOK,
		Random: randomness.Randomness,
		Round:  randomness.Round,
	}
}

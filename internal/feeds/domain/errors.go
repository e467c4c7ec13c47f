package domain

import (
	"github.com/gen-relay/genlayer-relay/internal/errors"
)

// Feed error definitions.
var (
	// ErrCityMissing indicates a weather request without a city.
	//
	// HTTP Status: 400 Bad Request
	ErrCityMissing = errors.Define(errors.ErrInvalidInput, "missing city")

	// ErrCityNotFound indicates the weather provider does not know the city.
	//
	// HTTP Status: 404 Not Found
	ErrCityNotFound = errors.Define(errors.ErrNotFound, "city not found")

	// ErrWeatherAPIKeyMissing indicates WEATHER_API_KEY is not configured.
	//
	// HTTP Status: 500 Internal Server Error
	ErrWeatherAPIKeyMissing = errors.Define(errors.ErrConfiguration, "weather api key missing")

	// ErrUpstreamFailed indicates a feed provider failed or returned an unusable response.
	//
	// HTTP Status: 502 Bad Gateway
	ErrUpstreamFailed = errors.Define(errors.ErrUpstream, "upstream request failed")
)

package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

const currentWeatherPath = "/data/2.5/weather"

// OpenWeatherClient talks to the OpenWeather current weather API.
type OpenWeatherClient struct {
	apiKey string
	client *SimpleHTTPClient
}

// NewOpenWeatherClient returns a WeatherClient. An empty apiKey is accepted so the
// service can start; every fetch then fails with ErrWeatherAPIKeyMissing.
func NewOpenWeatherClient(client *SimpleHTTPClient, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey: apiKey,
		client: client,
	}
}

// weatherParams for fetching current weather
type weatherParams struct {
	City   string `url:"q"`
	APIKey string `url:"appid"`
	Units  string `url:"units"`
}

// GenerateQueryString implements QueryStringBody.
func (p *weatherParams) GenerateQueryString() (url.Values, error) {
	return query.Values(p)
}

// FetchWeather fetches the current weather for city in metric units.
func (c *OpenWeatherClient) FetchWeather(ctx context.Context, city string) (*feedsDomain.Weather, error) {
	if c.apiKey == "" {
		return nil, feedsDomain.ErrWeatherAPIKeyMissing
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, feedsDomain.ErrCityMissing
	}

	req, err := c.client.NewRequest(ctx, currentWeatherPath, &weatherParams{
		City:   city,
		APIKey: c.apiKey,
		Units:  "metric",
	})
	if err != nil {
		return nil, err
	}

	var body feedsDomain.Weather
	if err := c.client.Do(req, &body); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil, feedsDomain.ErrCityNotFound
		}
		return nil, err
	}

	return &body, nil
}

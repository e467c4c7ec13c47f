package app

import (
	"fmt"

	feedsHTTP "github.com/gen-relay/genlayer-relay/internal/feeds/http"
	feedsService "github.com/gen-relay/genlayer-relay/internal/feeds/service"
	feedsUseCase "github.com/gen-relay/genlayer-relay/internal/feeds/usecase"
)

// PriceClient returns the CoinGecko price client.
func (c *Container) PriceClient() (feedsService.PriceClient, error) {
	var err error
	c.priceClientInit.Do(func() {
		c.priceClient, err = c.initPriceClient()
		if err != nil {
			c.initErrors["priceClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["priceClient"]; exists {
		return nil, storedErr
	}
	return c.priceClient, nil
}

// WeatherClient returns the OpenWeather client.
func (c *Container) WeatherClient() (feedsService.WeatherClient, error) {
	var err error
	c.weatherClientInit.Do(func() {
		c.weatherClient, err = c.initWeatherClient()
		if err != nil {
			c.initErrors["weatherClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["weatherClient"]; exists {
		return nil, storedErr
	}
	return c.weatherClient, nil
}

// RandomnessClient returns the drand client.
func (c *Container) RandomnessClient() (feedsService.RandomnessClient, error) {
	var err error
	c.randomnessClientInit.Do(func() {
		c.randomnessClient, err = c.initRandomnessClient()
		if err != nil {
			c.initErrors["randomnessClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["randomnessClient"]; exists {
		return nil, storedErr
	}
	return c.randomnessClient, nil
}

// FeedUseCase returns the feed use case.
func (c *Container) FeedUseCase() (feedsUseCase.FeedUseCase, error) {
	var err error
	c.feedUseCaseInit.Do(func() {
		c.feedUseCase, err = c.initFeedUseCase()
		if err != nil {
			c.initErrors["feedUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["feedUseCase"]; exists {
		return nil, storedErr
	}
	return c.feedUseCase, nil
}

// FeedHandler returns the HTTP handler for the feed endpoints.
func (c *Container) FeedHandler() (*feedsHTTP.FeedHandler, error) {
	var err error
	c.feedHandlerInit.Do(func() {
		c.feedHandler, err = c.initFeedHandler()
		if err != nil {
			c.initErrors["feedHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["feedHandler"]; exists {
		return nil, storedErr
	}
	return c.feedHandler, nil
}

func (c *Container) newUpstreamClient(serverURL string) (*feedsService.SimpleHTTPClient, error) {
	return feedsService.NewSimpleHTTPClient(serverURL, c.config.UpstreamTimeout, c.Logger())
}

// initPriceClient creates the CoinGecko client.
func (c *Container) initPriceClient() (feedsService.PriceClient, error) {
	client, err := c.newUpstreamClient(c.config.CoinGeckoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create coingecko client: %w", err)
	}
	return feedsService.NewCoinGeckoClient(client, c.config.CoinGeckoAPIKey), nil
}

// initWeatherClient creates the OpenWeather client.
func (c *Container) initWeatherClient() (feedsService.WeatherClient, error) {
	client, err := c.newUpstreamClient(c.config.WeatherURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create openweather client: %w", err)
	}

	if c.config.WeatherAPIKey == "" {
		c.Logger().Warn("WEATHER_API_KEY is not set; /weather will report the key missing")
	}

	return feedsService.NewOpenWeatherClient(client, c.config.WeatherAPIKey), nil
}

// initRandomnessClient creates the drand client.
func (c *Container) initRandomnessClient() (feedsService.RandomnessClient, error) {
	client, err := c.newUpstreamClient(c.config.RandomURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create drand client: %w", err)
	}
	return feedsService.NewDrandClient(client), nil
}

// initFeedUseCase creates the feed use case with all its dependencies.
func (c *Container) initFeedUseCase() (feedsUseCase.FeedUseCase, error) {
	priceClient, err := c.PriceClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get price client for feed use case: %w", err)
	}

	weatherClient, err := c.WeatherClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get weather client for feed use case: %w", err)
	}

	randomnessClient, err := c.RandomnessClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get randomness client for feed use case: %w", err)
	}

	baseUseCase := feedsUseCase.NewFeedUseCase(priceClient, weatherClient, randomnessClient, feedsUseCase.Config{
		PriceIDs:          c.config.PriceIDs,
		PriceVsCurrencies: c.config.PriceVsCurrencies,
		CacheTTL:          c.config.FeedCacheTTL,
	})

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for feed use case: %w", err)
		}
		return feedsUseCase.NewFeedUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initFeedHandler creates the feed HTTP handler.
func (c *Container) initFeedHandler() (*feedsHTTP.FeedHandler, error) {
	useCase, err := c.FeedUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get feed use case for feed handler: %w", err)
	}
	return feedsHTTP.NewFeedHandler(useCase, c.Logger()), nil
}

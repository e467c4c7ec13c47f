// Package usecase implements the feed relay application layer.
//
// Upstream responses are cached in memory for a fixed TTL and concurrent
// identical fetches share a single upstream call.
package usecase

import (
	"context"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
	feedsService "github.com/gen-relay/genlayer-relay/internal/feeds/service"
)

const (
	// DefaultVsCurrency is used when a price request names no vs currency.
	DefaultVsCurrency = "usd"

	// maxCacheItems bounds the cache since weather keys are caller controlled.
	maxCacheItems = 1024
)

// Config holds feed defaults.
type Config struct {
	PriceIDs          []string
	PriceVsCurrencies []string
	CacheTTL          time.Duration
}

type feedUseCase struct {
	priceClient      feedsService.PriceClient
	weatherClient    feedsService.WeatherClient
	randomnessClient feedsService.RandomnessClient
	config           Config

	cache *cache.Cache
	group singleflight.Group
}

// NewFeedUseCase creates a FeedUseCase. A non-positive CacheTTL disables caching.
func NewFeedUseCase(
	priceClient feedsService.PriceClient,
	weatherClient feedsService.WeatherClient,
	randomnessClient feedsService.RandomnessClient,
	config Config,
) FeedUseCase {
	return &feedUseCase{
		priceClient:      priceClient,
		weatherClient:    weatherClient,
		randomnessClient: randomnessClient,
		config:           config,
		// No janitor goroutine; expired entries are purged when the cache fills up.
		cache: cache.New(config.CacheTTL, 0),
	}
}

// Prices fetches prices, defaulting ids to the configured assets and vs to usd.
func (f *feedUseCase) Prices(ctx context.Context, ids, vsCurrencies string) (feedsDomain.Prices, error) {
	ids = normalizeList(ids)
	if ids == "" {
		ids = strings.Join(f.config.PriceIDs, ",")
	}
	vsCurrencies = normalizeList(vsCurrencies)
	if vsCurrencies == "" {
		vsCurrencies = DefaultVsCurrency
	}

	return cached(ctx, f, "prices:"+ids+":"+vsCurrencies, f.config.CacheTTL,
		func(ctx context.Context) (feedsDomain.Prices, error) {
			return f.priceClient.FetchSimplePrice(ctx, ids, vsCurrencies)
		},
	)
}

// PriceOptions returns copies of the configured lists.
func (f *feedUseCase) PriceOptions(ctx context.Context) *feedsDomain.PriceOptions {
	return &feedsDomain.PriceOptions{
		Crypto: append([]string{}, f.config.PriceIDs...),
		FX:     append([]string{}, f.config.PriceVsCurrencies...),
	}
}

// Weather fetches the current weather. The cache key ignores case.
func (f *feedUseCase) Weather(ctx context.Context, city string) (*feedsDomain.Weather, error) {
	city = strings.TrimSpace(city)
	key := "weather:" + strings.ToLower(city)

	return cached(ctx, f, key, f.config.CacheTTL, func(ctx context.Context) (*feedsDomain.Weather, error) {
		return f.weatherClient.FetchWeather(ctx, city)
	})
}

// Random fetches the latest randomness. Rounds are never cached, only
// concurrent requests are collapsed.
func (f *feedUseCase) Random(ctx context.Context) (*feedsDomain.Randomness, error) {
	return cached(ctx, f, "random", 0, func(ctx context.Context) (*feedsDomain.Randomness, error) {
		return f.randomnessClient.FetchLatest(ctx)
	})
}

// cached returns the cached value for key or calls fetch once for all concurrent
// callers. The shared fetch runs detached from the first caller's cancellation
// and relies on the upstream client timeout.
func cached[T any](
	ctx context.Context,
	f *feedUseCase,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (T, error),
) (T, error) {
	if v, found := f.cache.Get(key); found {
		return v.(T), nil
	}

	v, err, _ := f.group.Do(key, func() (any, error) {
		if v, found := f.cache.Get(key); found {
			return v, nil
		}
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		f.store(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

func (f *feedUseCase) store(key string, v any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if f.cache.ItemCount() >= maxCacheItems {
		f.cache.DeleteExpired()
		if f.cache.ItemCount() >= maxCacheItems {
			return
		}
	}
	f.cache.Set(key, v, ttl)
}

// normalizeList lowercases a comma separated list and drops empty entries.
func normalizeList(value string) string {
	parts := strings.Split(strings.ToLower(value), ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}

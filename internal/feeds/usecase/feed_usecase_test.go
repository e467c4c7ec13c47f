package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePriceClient struct {
	calls   atomic.Int32
	lastIDs string
	lastVs  string
	mu      sync.Mutex
	err     error
}

func (f *fakePriceClient) FetchSimplePrice(
	ctx context.Context,
	ids, vsCurrencies string,
) (feedsDomain.Prices, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastIDs, f.lastVs = ids, vsCurrencies
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return feedsDomain.Prices{"bitcoin": {"usd": decimal.NewFromInt(100)}}, nil
}

type fakeWeatherClient struct {
	calls    atomic.Int32
	lastCity string
}

func (f *fakeWeatherClient) FetchWeather(ctx context.Context, city string) (*feedsDomain.Weather, error) {
	f.calls.Add(1)
	f.lastCity = city
	return &feedsDomain.Weather{Name: city}, nil
}

type fakeRandomnessClient struct {
	calls   atomic.Int32
	release chan struct{}
}

func (f *fakeRandomnessClient) FetchLatest(ctx context.Context) (*feedsDomain.Randomness, error) {
	round := f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return &feedsDomain.Randomness{Round: uint64(round), Randomness: "ab"}, nil
}

func newTestFeedUseCase(ttl time.Duration) (*feedUseCase, *fakePriceClient, *fakeWeatherClient, *fakeRandomnessClient) {
	prices := &fakePriceClient{}
	weather := &fakeWeatherClient{}
	randomness := &fakeRandomnessClient{}

	uc := NewFeedUseCase(prices, weather, randomness, Config{
		PriceIDs:          []string{"bitcoin", "ethereum"},
		PriceVsCurrencies: []string{"usd", "eur"},
		CacheTTL:          ttl,
	}).(*feedUseCase)

	return uc, prices, weather, randomness
}

func TestFeedUseCase_Prices(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultsApplied", func(t *testing.T) {
		uc, prices, _, _ := newTestFeedUseCase(time.Minute)

		result, err := uc.Prices(ctx, "", "")

		require.NoError(t, err)
		assert.Contains(t, result, "bitcoin")
		assert.Equal(t, "bitcoin,ethereum", prices.lastIDs)
		assert.Equal(t, DefaultVsCurrency, prices.lastVs)
	})

	t.Run("Success_CachedWithinTTL", func(t *testing.T) {
		uc, prices, _, _ := newTestFeedUseCase(time.Minute)

		_, err := uc.Prices(ctx, "bitcoin", "usd")
		require.NoError(t, err)
		_, err = uc.Prices(ctx, " Bitcoin ", "USD")
		require.NoError(t, err)

		assert.Equal(t, int32(1), prices.calls.Load())
	})

	t.Run("Success_DistinctQueriesNotShared", func(t *testing.T) {
		uc, prices, _, _ := newTestFeedUseCase(time.Minute)

		_, err := uc.Prices(ctx, "bitcoin", "usd")
		require.NoError(t, err)
		_, err = uc.Prices(ctx, "bitcoin", "eur")
		require.NoError(t, err)

		assert.Equal(t, int32(2), prices.calls.Load())
	})

	t.Run("Success_CacheDisabled", func(t *testing.T) {
		uc, prices, _, _ := newTestFeedUseCase(0)

		_, err := uc.Prices(ctx, "bitcoin", "usd")
		require.NoError(t, err)
		_, err = uc.Prices(ctx, "bitcoin", "usd")
		require.NoError(t, err)

		assert.Equal(t, int32(2), prices.calls.Load())
	})

	t.Run("Error_NotCached", func(t *testing.T) {
		uc, prices, _, _ := newTestFeedUseCase(time.Minute)
		prices.err = feedsDomain.ErrUpstreamFailed

		_, err := uc.Prices(ctx, "bitcoin", "usd")
		assert.ErrorIs(t, err, feedsDomain.ErrUpstreamFailed)
		_, err = uc.Prices(ctx, "bitcoin", "usd")
		assert.ErrorIs(t, err, feedsDomain.ErrUpstreamFailed)

		assert.Equal(t, int32(2), prices.calls.Load())
	})
}

func TestFeedUseCase_PriceOptions(t *testing.T) {
	uc, _, _, _ := newTestFeedUseCase(time.Minute)

	options := uc.PriceOptions(context.Background())
	options.Crypto[0] = "mutated"

	again := uc.PriceOptions(context.Background())
	assert.Equal(t, []string{"bitcoin", "ethereum"}, again.Crypto)
	assert.Equal(t, []string{"usd", "eur"}, again.FX)
}

func TestFeedUseCase_Weather(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CacheIgnoresCase", func(t *testing.T) {
		uc, _, weather, _ := newTestFeedUseCase(time.Minute)

		first, err := uc.Weather(ctx, "London")
		require.NoError(t, err)
		second, err := uc.Weather(ctx, " london ")
		require.NoError(t, err)

		assert.Equal(t, int32(1), weather.calls.Load())
		assert.Same(t, first, second)
	})

	t.Run("Success_TrimsCity", func(t *testing.T) {
		uc, _, weather, _ := newTestFeedUseCase(time.Minute)

		_, err := uc.Weather(ctx, "  Paris ")

		require.NoError(t, err)
		assert.Equal(t, "Paris", weather.lastCity)
	})
}

func TestFeedUseCase_Random(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NeverCached", func(t *testing.T) {
		uc, _, _, randomness := newTestFeedUseCase(time.Minute)

		first, err := uc.Random(ctx)
		require.NoError(t, err)
		second, err := uc.Random(ctx)
		require.NoError(t, err)

		assert.Equal(t, int32(2), randomness.calls.Load())
		assert.NotEqual(t, first.Round, second.Round)
	})

	t.Run("Success_ConcurrentCallsCollapsed", func(t *testing.T) {
		uc, _, _, randomness := newTestFeedUseCase(time.Minute)
		randomness.release = make(chan struct{})

		const callers = 8
		var started, done sync.WaitGroup
		results := make([]*feedsDomain.Randomness, callers)
		started.Add(callers)
		done.Add(callers)
		for i := 0; i < callers; i++ {
			go func(i int) {
				defer done.Done()
				started.Done()
				r, err := uc.Random(ctx)
				assert.NoError(t, err)
				results[i] = r
			}(i)
		}
		started.Wait()

		// Give every caller time to join the in-flight fetch.
		assert.Eventually(t, func() bool { return randomness.calls.Load() == 1 }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		close(randomness.release)
		done.Wait()

		assert.Equal(t, int32(1), randomness.calls.Load())
		for _, r := range results {
			assert.Equal(t, uint64(1), r.Round)
		}
	})

	t.Run("Success_CallerCancellationDoesNotAbortSharedFetch", func(t *testing.T) {
		uc, _, _, _ := newTestFeedUseCase(time.Minute)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		r, err := uc.Random(cancelled)

		require.NoError(t, err)
		assert.NotNil(t, r)
	})
}

func TestFeedUseCase_CacheBounded(t *testing.T) {
	uc, _, weather, _ := newTestFeedUseCase(time.Minute)

	for i := 0; i < maxCacheItems+10; i++ {
		_, err := uc.Weather(context.Background(), string(rune('a'+i%26))+time.Duration(i).String())
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, uc.cache.ItemCount(), maxCacheItems)
	assert.Equal(t, int32(maxCacheItems+10), weather.calls.Load())
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, "bitcoin,ethereum", normalizeList(" Bitcoin, ,ETHEREUM,"))
	assert.Equal(t, "", normalizeList(""))
	assert.Equal(t, "", normalizeList(" , "))
}

func TestCached_ErrorReturnsZeroValue(t *testing.T) {
	uc, _, _, _ := newTestFeedUseCase(time.Minute)
	boom := errors.New("boom")

	v, err := cached(context.Background(), uc, "k", time.Minute, func(context.Context) (*feedsDomain.Weather, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, v)
	_, found := uc.cache.Get("k")
	assert.False(t, found)
}

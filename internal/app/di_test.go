package app

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	"github.com/gen-relay/genlayer-relay/internal/config"
	signingDomain "github.com/gen-relay/genlayer-relay/internal/signing/domain"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ServerHost:        "localhost",
		ServerPort:        0,
		ShutdownTimeout:   time.Second,
		LogLevel:          "error",
		SignSecret:        "s3cr3t",
		SignAlgorithm:     "hmac-sha256",
		CORSEnabled:       true,
		CORSAllowOrigins:  "*",
		MetricsEnabled:    false,
		MetricsNamespace:  "relay",
		MetricsPort:       0,
		CoinGeckoURL:      "https://api.coingecko.com",
		PriceIDs:          []string{"bitcoin", "ethereum"},
		PriceVsCurrencies: []string{"usd", "eur"},
		WeatherURL:        "https://api.openweathermap.org",
		RandomURL:         "https://api.drand.sh",
		UpstreamTimeout:   time.Second,
		FeedCacheTTL:      time.Second,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := newTestConfig()

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is a singleton.
func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.LogLevel = level
			container := NewContainer(cfg)

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainerSigningUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("signs with configured secret", func(t *testing.T) {
		container := NewContainer(newTestConfig())

		useCase, err := container.SigningUseCase()
		require.NoError(t, err)

		signed, err := useCase.Sign(ctx, "hello world")
		require.NoError(t, err)
		assert.Equal(t,
			"d9b5f3e840587b0ea010e1b4c77ed7a8a3bae99ef7bb153ddb7ab31075b8ca80",
			signed.Signature.String(),
		)

		again, err := container.SigningUseCase()
		require.NoError(t, err)
		assert.Same(t, useCase, again)
	})

	t.Run("empty secret still builds", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.SignSecret = ""
		container := NewContainer(cfg)

		useCase, err := container.SigningUseCase()
		require.NoError(t, err)

		_, err = useCase.Sign(ctx, "hello world")
		assert.ErrorIs(t, err, signingDomain.ErrSecretMissing)
	})

	t.Run("unsupported algorithm is cached", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.SignAlgorithm = "md5"
		container := NewContainer(cfg)

		_, err := container.SigningUseCase()
		require.ErrorIs(t, err, signingDomain.ErrUnsupportedAlgorithm)

		_, err = container.SigningUseCase()
		require.ErrorIs(t, err, signingDomain.ErrUnsupportedAlgorithm)

		_, err = container.HTTPServer()
		require.ErrorIs(t, err, signingDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("kms wrapped secret", func(t *testing.T) {
		key := make([]byte, 32)
		_, err := rand.Read(key)
		require.NoError(t, err)
		keyURI := "base64key://" + base64.URLEncoding.EncodeToString(key)

		keeper, err := secrets.OpenKeeper(ctx, keyURI)
		require.NoError(t, err)
		ciphertext, err := keeper.Encrypt(ctx, []byte("s3cr3t"))
		require.NoError(t, err)
		require.NoError(t, keeper.Close())

		cfg := newTestConfig()
		cfg.KMSKeyURI = keyURI
		cfg.SignSecret = base64.StdEncoding.EncodeToString(ciphertext)
		container := NewContainer(cfg)

		useCase, err := container.SigningUseCase()
		require.NoError(t, err)

		verification, err := useCase.Verify(
			ctx,
			"hello world",
			"d9b5f3e840587b0ea010e1b4c77ed7a8a3bae99ef7bb153ddb7ab31075b8ca80",
		)
		require.NoError(t, err)
		assert.True(t, verification.Valid)
	})

	t.Run("undecryptable secret fails", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.KMSKeyURI = "base64key://" + base64.URLEncoding.EncodeToString(make([]byte, 32))
		cfg.SignSecret = "not base64!"
		container := NewContainer(cfg)

		_, err := container.Secret()
		require.ErrorIs(t, err, signingDomain.ErrSecretDecryption)
	})
}

func TestContainerFeedClients(t *testing.T) {
	t.Run("invalid upstream url", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.RandomURL = "not a url"
		container := NewContainer(cfg)

		_, err := container.RandomnessClient()
		require.Error(t, err)

		_, err = container.FeedUseCase()
		require.Error(t, err)
	})

	t.Run("builds feed handler", func(t *testing.T) {
		container := NewContainer(newTestConfig())

		handler, err := container.FeedHandler()
		require.NoError(t, err)
		require.NotNil(t, handler)

		useCase, err := container.FeedUseCase()
		require.NoError(t, err)
		assert.Equal(t, []string{"bitcoin", "ethereum"}, useCase.PriceOptions(context.Background()).Crypto)
	})
}

func TestContainerMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		container := NewContainer(newTestConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.MetricsEnabled = true
		cfg.MetricsNamespace = "relay_di_test"
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, metricsServer)

		useCase, err := container.SigningUseCase()
		require.NoError(t, err)
		_, err = useCase.Sign(context.Background(), "hello world")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "relay_di_test_operations_total"))

		require.NoError(t, container.Shutdown(context.Background()))
	})
}

func TestContainerHTTPServer(t *testing.T) {
	container := NewContainer(newTestConfig())

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sign", strings.NewReader(`{"message":"hello world"}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "d9b5f3e840587b0ea010e1b4c77ed7a8a3bae99ef7bb153ddb7ab31075b8ca80")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	require.NoError(t, container.Shutdown(context.Background()))
}

func TestContainerShutdownWithoutInitialization(t *testing.T) {
	container := NewContainer(newTestConfig())
	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainerSecretLengthWarning(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		wantWarn bool
	}{
		{"short secret", "s3cr3t", true},
		{"recommended length", strings.Repeat("a", minSecretBytes), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.SignSecret = tt.secret
			container := NewContainer(cfg)

			var logs bytes.Buffer
			container.loggerInit.Do(func() {
				container.logger = slog.New(slog.NewJSONHandler(&logs, nil))
			})

			secret, err := container.Secret()
			require.NoError(t, err)
			assert.Equal(t, len(tt.secret), secret.Len())

			if tt.wantWarn {
				assert.Contains(t, logs.String(), "SIGN_SECRET is shorter than recommended")
			} else {
				assert.NotContains(t, logs.String(), "shorter than recommended")
			}
			assert.NotContains(t, logs.String(), tt.secret)
		})
	}
}

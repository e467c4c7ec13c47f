// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the API and metrics servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SignSecret is the shared HMAC secret, or its base64 ciphertext when KMSKeyURI is set.
	// Never log this value.
	SignSecret string
	// SignAlgorithm selects the MAC construction (hmac-sha256, hmac-sha512, hmac-sha3-256).
	SignAlgorithm string
	// KMSKeyURI is the gocloud.dev/secrets keeper URI used to decrypt SignSecret.
	KMSKeyURI string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins, or "*".
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// StaticDir is the directory of the built dashboard. Empty disables static serving.
	StaticDir string

	// CoinGeckoURL is the base URL of the CoinGecko API.
	CoinGeckoURL string
	// CoinGeckoAPIKey is the optional CoinGecko demo API key.
	CoinGeckoAPIKey string
	// PriceIDs are the crypto asset ids offered to the dashboard.
	PriceIDs []string
	// PriceVsCurrencies are the fiat currencies offered to the dashboard.
	PriceVsCurrencies []string

	// WeatherURL is the base URL of the OpenWeather API.
	WeatherURL string
	// WeatherAPIKey is the OpenWeather API key.
	WeatherAPIKey string

	// RandomURL is the base URL of a drand HTTP relay.
	RandomURL string

	// UpstreamTimeout bounds every upstream feed request.
	UpstreamTimeout time.Duration
	// FeedCacheTTL is how long price and weather responses are cached. Zero disables caching.
	FeedCacheTTL time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 3000),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Signing
		SignSecret:    env.GetString("SIGN_SECRET", ""),
		SignAlgorithm: env.GetString("SIGN_ALGORITHM", "hmac-sha256"),
		KMSKeyURI:     env.GetString("KMS_KEY_URI", ""),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "*"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "relay"),
		MetricsPort:      env.GetInt("METRICS_PORT", 3001),

		// Dashboard
		StaticDir: env.GetString("STATIC_DIR", "frontend/dist"),

		// Feeds
		CoinGeckoURL:    env.GetString("COINGECKO_URL", "https://api.coingecko.com"),
		CoinGeckoAPIKey: env.GetString("COINGECKO_API_KEY", ""),
		PriceIDs: splitList(
			env.GetString("PRICE_IDS", "bitcoin,ethereum,solana,cardano,dogecoin"),
		),
		PriceVsCurrencies: splitList(env.GetString("PRICE_VS_CURRENCIES", "usd,eur,gbp,jpy")),
		WeatherURL:        env.GetString("WEATHER_URL", "https://api.openweathermap.org"),
		WeatherAPIKey:     env.GetString("WEATHER_API_KEY", ""),
		RandomURL:         env.GetString("RANDOM_URL", "https://api.drand.sh"),
		UpstreamTimeout:   env.GetDuration("UPSTREAM_TIMEOUT_SECONDS", 10, time.Second),
		FeedCacheTTL:      env.GetDuration("FEED_CACHE_TTL_SECONDS", 30, time.Second),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// splitList splits a comma-separated value, trimming entries and dropping empty ones.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound upstream call and the per-request
	// budget of GET /weather.
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	// Upstream endpoints. Empty means the provider's public default.
	GeocodingURL        string
	ReverseGeocodingURL string
	ForecastURL         string
	UserAgent           string

	// Nominatim allows at most one request per second per client.
	NominatimRPS   float64
	NominatimBurst int

	// UpstreamMaxRetries is 0 unless explicitly raised: one attempt per call.
	UpstreamMaxRetries int

	// GoogleGeocoderAPIKey switches reverse geocoding to Google when set.
	GoogleGeocoderAPIKey string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Info("could not load .env file")
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFormat = getenvDefault("LOG_FORMAT", "json")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.GeocodingURL = os.Getenv("GEOCODING_URL")
	cfg.ReverseGeocodingURL = os.Getenv("REVERSE_GEOCODING_URL")
	cfg.ForecastURL = os.Getenv("FORECAST_URL")
	cfg.UserAgent = getenvDefault("USER_AGENT", "WeatherPredictionApp/1.0")

	rps, err := strconv.ParseFloat(getenvDefault("NOMINATIM_RPS", "1"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid NOMINATIM_RPS: must be a positive number")
	}
	cfg.NominatimRPS = rps

	if cfg.NominatimBurst, err = getenvInt("NOMINATIM_BURST", 1); err != nil || cfg.NominatimBurst < 1 {
		return nil, fmt.Errorf("invalid NOMINATIM_BURST: must be a positive integer")
	}
	if cfg.UpstreamMaxRetries, err = getenvInt("UPSTREAM_MAX_RETRIES", 0); err != nil || cfg.UpstreamMaxRetries < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_MAX_RETRIES: must be zero or more")
	}

	cfg.GoogleGeocoderAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

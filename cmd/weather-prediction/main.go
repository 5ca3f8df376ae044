package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/weather-prediction/internal/api/http"
	"github.com/i474232898/weather-prediction/internal/config"
	"github.com/i474232898/weather-prediction/internal/observability"
	"github.com/i474232898/weather-prediction/internal/weather"
	"github.com/i474232898/weather-prediction/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	upstreamOpts := func(baseURL string) providers.Options {
		return providers.Options{
			Client:     httpClient,
			BaseURL:    baseURL,
			UserAgent:  cfg.UserAgent,
			MaxRetries: cfg.UpstreamMaxRetries,
			Metrics:    metrics,
		}
	}

	var reverse weather.ReverseGeocoder
	if cfg.GoogleGeocoderAPIKey != "" {
		reverse = providers.NewGoogleReverseGeocoder(cfg.GoogleGeocoderAPIKey, upstreamOpts(""))
		log.Info("reverse geocoding via google")
	} else {
		reverse = providers.NewRateLimitedReverseGeocoder(
			providers.NewNominatimGeocoder(upstreamOpts(cfg.ReverseGeocodingURL)),
			cfg.NominatimRPS,
			cfg.NominatimBurst,
		)
	}

	resolver := weather.NewResolver(
		providers.NewOpenMeteoGeocoder(upstreamOpts(cfg.GeocodingURL)),
		reverse,
		log,
	)
	fetcher := weather.NewFetcher(providers.NewOpenMeteoProvider(upstreamOpts(cfg.ForecastURL)))
	service := weather.NewService(resolver, fetcher, log)

	app := httpapi.NewApp(httpapi.AppOptions{Logger: log, AccessLog: os.Stdout})
	httpapi.RegisterRoutes(app, service, httpapi.RouteOptions{
		Metrics:        metrics,
		RequestTimeout: cfg.HTTPTimeout,
	})

	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Error("fiber server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
}

package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-prediction/internal/weather"
)

// RateLimitedReverseGeocoder wraps a ReverseGeocoder with a token bucket.
type RateLimitedReverseGeocoder struct {
	inner   weather.ReverseGeocoder
	limiter *rate.Limiter
}

// NewRateLimitedReverseGeocoder allows rps requests per second with the given burst.
func NewRateLimitedReverseGeocoder(inner weather.ReverseGeocoder, rps float64, burst int) *RateLimitedReverseGeocoder {
	return &RateLimitedReverseGeocoder{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Reverse waits for a token or for ctx to end, then delegates.
func (r *RateLimitedReverseGeocoder) Reverse(ctx context.Context, c weather.Coordinates) (weather.Address, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Address{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.inner.Reverse(ctx, c)
}

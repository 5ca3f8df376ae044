package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-prediction/internal/observability"
)

// BackoffConfig controls exponential backoff behaviour. MaxRetries 0 means a
// single attempt, which is the default: a failed upstream call is reported
// immediately.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client    *http.Client
	Backoff   BackoffConfig
	UserAgent string
}

// Options configures an upstream client. Zero values pick production defaults.
type Options struct {
	Client     *http.Client
	BaseURL    string
	UserAgent  string
	MaxRetries int
	Metrics    *observability.Metrics
	Clock      clockwork.Clock
}

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errUnexpected    = errors.New("unexpected status code")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
	errMissingField  = errors.New("missing field in upstream payload")
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// upstream is the per-dependency state shared by every client: its breaker,
// HTTP settings and instrumentation.
type upstream struct {
	name    string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func newUpstream(name string, opts Options) upstream {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return upstream{
		name: name,
		httpCfg: HTTPClientConfig{
			Client:    client,
			UserAgent: opts.UserAgent,
			Backoff: BackoffConfig{
				MaxRetries:      opts.MaxRetries,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newBreaker(name),
		metrics: opts.Metrics,
		clock:   clock,
	}
}

// getJSON performs a GET against rawURL and decodes the JSON body into v.
func (u *upstream) getJSON(ctx context.Context, rawURL string, v any) error {
	start := u.clock.Now()

	resp, err := doRequestWithResilience(ctx, u.httpCfg, u.circuit, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if u.httpCfg.UserAgent != "" {
			req.Header.Set("User-Agent", u.httpCfg.UserAgent)
		}
		return req, nil
	})
	if err == nil {
		defer resp.Body.Close()
		if decErr := json.NewDecoder(resp.Body).Decode(v); decErr != nil {
			err = fmt.Errorf("decode response: %w", decErr)
		}
	}

	u.observe(start, err)
	if err != nil {
		return fmt.Errorf("%s: %w", u.name, err)
	}
	return nil
}

func (u *upstream) observe(start time.Time, err error) {
	if u.metrics == nil {
		return
	}

	outcome := "success"
	switch {
	case errors.Is(err, errCircuitOpen):
		outcome = "circuit_open"
	case err != nil:
		outcome = "error"
	}

	u.metrics.UpstreamRequests.WithLabelValues(u.name, outcome).Inc()
	u.metrics.UpstreamDuration.WithLabelValues(u.name).Observe(u.clock.Since(start).Seconds())
}

// doRequestWithResilience executes the HTTP request through the circuit
// breaker, retrying with exponential backoff only when MaxRetries > 0.
// Non-2xx responses are errors and their bodies are closed here.
func doRequestWithResilience(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}
	if cfg.Backoff.MaxRetries < 0 || (cfg.Backoff.MaxRetries > 0 && cfg.Backoff.InitialInterval <= 0) {
		return nil, errInvalidConfig
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}

		// Ensure the request obeys context cancellation.
		req = req.WithContext(ctx)

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := cfg.Client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				drainAndClose(resp)
				switch {
				case resp.StatusCode == http.StatusTooManyRequests:
					return nil, errRateLimited
				case resp.StatusCode >= 500:
					return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
				default:
					return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
				}
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If circuit is open, propagate immediately.
		if isBreakerRejection(err) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= cfg.Backoff.MaxRetries {
			return nil, lastErr
		}

		delay := cfg.Backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > cfg.Backoff.MaxInterval && cfg.Backoff.MaxInterval > 0 {
			delay = cfg.Backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}

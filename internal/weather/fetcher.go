package weather

import (
	"context"
	"fmt"
	"math"
)

// Fetcher reads current conditions for resolved coordinates.
type Fetcher struct {
	provider ConditionsProvider
}

// NewFetcher creates a Fetcher over a conditions provider.
func NewFetcher(provider ConditionsProvider) *Fetcher {
	return &Fetcher{provider: provider}
}

// Fetch returns the reading for c with temperature and wind speed rounded to
// whole units. Humidity is passed through. Errors wrap ErrUpstream.
func (f *Fetcher) Fetch(ctx context.Context, c Coordinates) (Reading, error) {
	cond, err := f.provider.Current(ctx, c)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: current conditions: %w", ErrUpstream, err)
	}

	condition := cond.Condition
	if condition == "" {
		condition = ConditionUnknown
	}

	return Reading{
		Temperature: roundHalfUp(cond.Temperature),
		Humidity:    cond.Humidity,
		WindSpeed:   roundHalfUp(cond.WindSpeed),
		Condition:   condition,
	}, nil
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

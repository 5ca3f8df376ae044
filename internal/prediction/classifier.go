// Package prediction classifies current readings as sunny or rainy using a
// fixed, ordered rule table. It is not a trained model: every outcome can be
// traced to one row of the table.
package prediction

import (
	"fmt"
	"math"

	"github.com/i474232898/weather-prediction/internal/weather"
)

// Label is the classification outcome.
type Label string

const (
	Sunny Label = "Sunny"
	Rainy Label = "Rainy"
)

// Input limits.
const (
	MinTemperature = -50.0
	MaxTemperature = 50.0
	MinHumidity    = 0.0
	MaxHumidity    = 100.0
	MinWindSpeed   = 0.0
	MaxWindSpeed   = 100.0
)

// Result is a labeled probability pair. Sunny + Rainy == 1 and Confidence is
// 100 * max(Sunny, Rainy).
type Result struct {
	Label      Label
	Sunny      float64
	Rainy      float64
	Confidence float64
	// Rule is the 1-based row of the table that matched, 0 for the default row.
	Rule int
}

// ConfidenceString renders the confidence with two decimals, e.g. "85.00%".
func (r Result) ConfidenceString() string {
	return fmt.Sprintf("%.2f%%", r.Confidence)
}

type rule struct {
	match func(t, h, w float64) bool
	sunny float64
	rainy float64
}

// Order matters: later rows overlap earlier, narrower ones.
var rules = []rule{
	{
		match: func(t, h, w float64) bool { return t < 30 && h > 70 && w > 10 },
		sunny: 0.15, rainy: 0.85,
	},
	{
		match: func(t, h, w float64) bool { return t < 25 && h > 80 && w > 5 },
		sunny: 0.20, rainy: 0.80,
	},
	{
		match: func(t, h, w float64) bool { return t < 20 && h > 75 && w > 5 },
		sunny: 0.25, rainy: 0.75,
	},
	{
		match: func(t, h, w float64) bool { return t >= 20 && t <= 30 && h > 65 && w >= 5 && w <= 10 },
		sunny: 0.30, rainy: 0.70,
	},
}

var defaultRule = rule{sunny: 0.75, rainy: 0.25}

// Classify validates r and evaluates the rule table top to bottom. The
// reading's Condition is ignored. Errors are always *ValidationError.
func Classify(r weather.Reading) (Result, error) {
	if err := Validate(r); err != nil {
		return Result{}, err
	}

	matched, index := defaultRule, 0
	for i, rl := range rules {
		if rl.match(r.Temperature, r.Humidity, r.WindSpeed) {
			matched, index = rl, i+1
			break
		}
	}

	label := Sunny
	if matched.rainy > matched.sunny {
		label = Rainy
	}

	return Result{
		Label:      label,
		Sunny:      matched.sunny,
		Rainy:      matched.rainy,
		Confidence: 100 * math.Max(matched.sunny, matched.rainy),
		Rule:       index,
	}, nil
}

// Validate reports the first violated input constraint, or nil.
func Validate(r weather.Reading) error {
	switch {
	case !finite(r.Temperature) || !finite(r.Humidity) || !finite(r.WindSpeed):
		return &ValidationError{Kind: InvalidInput}
	case r.Temperature < MinTemperature || r.Temperature > MaxTemperature:
		return &ValidationError{Kind: TemperatureOutOfRange}
	case r.Humidity < MinHumidity || r.Humidity > MaxHumidity:
		return &ValidationError{Kind: HumidityOutOfRange}
	case r.WindSpeed < MinWindSpeed || r.WindSpeed > MaxWindSpeed:
		return &ValidationError{Kind: WindSpeedOutOfRange}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

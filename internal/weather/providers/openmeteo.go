package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-prediction/internal/weather"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// currentFields are the open-meteo "current" variables this service reads.
const currentFields = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// OpenMeteoProvider implements weather.ConditionsProvider for the open-meteo forecast API.
type OpenMeteoProvider struct {
	upstream
	baseURL string
}

func NewOpenMeteoProvider(opts Options) *OpenMeteoProvider {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultForecastURL
	}
	return &OpenMeteoProvider{
		upstream: newUpstream("open-meteo-forecast", opts),
		baseURL:  baseURL,
	}
}

// Current asks the upstream for Celsius and km/h explicitly; no unit conversion happens here.
func (p *OpenMeteoProvider) Current(ctx context.Context, c weather.Coordinates) (weather.Conditions, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("temperature_unit", "celsius")
	values.Set("wind_speed_unit", "kmh")

	var payload struct {
		Current *struct {
			Temperature *float64 `json:"temperature_2m"`
			Humidity    *float64 `json:"relative_humidity_2m"`
			WindSpeed   *float64 `json:"wind_speed_10m"`
			WeatherCode *int     `json:"weather_code"`
		} `json:"current"`
	}

	if err := p.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Conditions{}, err
	}

	cur := payload.Current
	switch {
	case cur == nil:
		return weather.Conditions{}, fmt.Errorf("%s: %w: current", p.name, errMissingField)
	case cur.Temperature == nil:
		return weather.Conditions{}, fmt.Errorf("%s: %w: temperature_2m", p.name, errMissingField)
	case cur.Humidity == nil:
		return weather.Conditions{}, fmt.Errorf("%s: %w: relative_humidity_2m", p.name, errMissingField)
	case cur.WindSpeed == nil:
		return weather.Conditions{}, fmt.Errorf("%s: %w: wind_speed_10m", p.name, errMissingField)
	}

	cond := weather.ConditionUnknown
	if cur.WeatherCode != nil {
		cond = mapOpenMeteoCondition(*cur.WeatherCode)
	}

	return weather.Conditions{
		Temperature: *cur.Temperature,
		Humidity:    *cur.Humidity,
		WindSpeed:   *cur.WindSpeed,
		Condition:   cond,
	}, nil
}

func mapOpenMeteoCondition(code int) weather.Condition {
	// WMO weather interpretation codes, simplified.
	switch {
	case code == 0:
		return weather.ConditionClear
	case code >= 1 && code <= 3:
		return weather.ConditionCloudy
	case code == 45 || code == 48:
		return weather.ConditionMist
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return weather.ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.ConditionSnow
	case code >= 95:
		return weather.ConditionStorm
	default:
		return weather.ConditionUnknown
	}
}

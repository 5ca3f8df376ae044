package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-prediction/internal/weather"
)

func TestOpenMeteoProvider_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "52.52", q.Get("latitude"))
		assert.Equal(t, "13.41", q.Get("longitude"))
		assert.Equal(t, currentFields, q.Get("current"))
		assert.Equal(t, "celsius", q.Get("temperature_unit"))
		assert.Equal(t, "kmh", q.Get("wind_speed_unit"))

		writeJSON(w, `{"latitude":52.52,"longitude":13.419998,
			"current_units":{"temperature_2m":"°C","relative_humidity_2m":"%","wind_speed_10m":"km/h"},
			"current":{"time":"2026-10-19T12:00","interval":900,"temperature_2m":14.6,"relative_humidity_2m":77,"weather_code":61,"wind_speed_10m":11.3}}`)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(testOptions(srv.URL))
	got, err := p.Current(context.Background(), weather.Coordinates{Latitude: 52.52, Longitude: 13.41})
	require.NoError(t, err)

	assert.Equal(t, weather.Conditions{
		Temperature: 14.6,
		Humidity:    77,
		WindSpeed:   11.3,
		Condition:   weather.ConditionRain,
	}, got)
}

func TestOpenMeteoProvider_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"no current block", `{"latitude":1}`, "current"},
		{"no temperature", `{"current":{"relative_humidity_2m":50,"wind_speed_10m":3}}`, "temperature_2m"},
		{"no humidity", `{"current":{"temperature_2m":20,"wind_speed_10m":3}}`, "relative_humidity_2m"},
		{"no wind", `{"current":{"temperature_2m":20,"relative_humidity_2m":50}}`, "wind_speed_10m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewOpenMeteoProvider(testOptions(srv.URL)).Current(context.Background(), weather.Coordinates{})
			require.Error(t, err)
			assert.ErrorIs(t, err, errMissingField)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestOpenMeteoProvider_WeatherCodeOptional(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"current":{"temperature_2m":-3,"relative_humidity_2m":40,"wind_speed_10m":0}}`)
	}))
	defer srv.Close()

	got, err := NewOpenMeteoProvider(testOptions(srv.URL)).Current(context.Background(), weather.Coordinates{})
	require.NoError(t, err)
	assert.Equal(t, weather.ConditionUnknown, got.Condition)
	assert.Equal(t, -3.0, got.Temperature)
}

func TestOpenMeteoProvider_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`)
	}))
	defer srv.Close()

	_, err := NewOpenMeteoProvider(testOptions(srv.URL)).Current(context.Background(), weather.Coordinates{Latitude: 91})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnexpected)
}

func TestMapOpenMeteoCondition(t *testing.T) {
	cases := map[int]weather.Condition{
		0:  weather.ConditionClear,
		2:  weather.ConditionCloudy,
		45: weather.ConditionMist,
		63: weather.ConditionRain,
		81: weather.ConditionRain,
		73: weather.ConditionSnow,
		86: weather.ConditionSnow,
		95: weather.ConditionStorm,
		10: weather.ConditionUnknown,
	}
	for code, want := range cases {
		assert.Equal(t, want, mapOpenMeteoCondition(code), "code %d", code)
	}
}

package providers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-prediction/internal/weather"
)

const (
	defaultReverseGeocodingURL = "https://nominatim.openstreetmap.org/reverse"
	defaultUserAgent           = "WeatherPredictionApp/1.0"
)

// NominatimGeocoder implements weather.ReverseGeocoder with OpenStreetMap Nominatim.
// Nominatim rejects requests without an identifying User-Agent.
type NominatimGeocoder struct {
	upstream
	baseURL string
}

func NewNominatimGeocoder(opts Options) *NominatimGeocoder {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultReverseGeocodingURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &NominatimGeocoder{
		upstream: newUpstream("nominatim-reverse", opts),
		baseURL:  opts.BaseURL,
	}
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, c weather.Coordinates) (weather.Address, error) {
	values := url.Values{}
	values.Set("format", "json")
	values.Set("lat", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(c.Longitude, 'f', -1, 64))

	// Points with nothing nearby come back as {"error": "..."} with no address.
	var payload struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Country string `json:"country"`
		} `json:"address"`
	}

	if err := g.getJSON(ctx, g.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Address{}, err
	}

	return weather.Address{
		City:    payload.Address.City,
		Town:    payload.Address.Town,
		Village: payload.Address.Village,
		Country: payload.Address.Country,
	}, nil
}

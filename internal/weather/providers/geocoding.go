package providers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-prediction/internal/weather"
)

const defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoder implements weather.ForwardGeocoder with the open-meteo geocoding search.
type OpenMeteoGeocoder struct {
	upstream
	baseURL string
}

func NewOpenMeteoGeocoder(opts Options) *OpenMeteoGeocoder {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}
	return &OpenMeteoGeocoder{
		upstream: newUpstream("open-meteo-geocoding", opts),
		baseURL:  baseURL,
	}
}

// Search returns up to limit candidates in the order the API ranked them.
// A response without "results" means no match.
func (g *OpenMeteoGeocoder) Search(ctx context.Context, name string, limit int) ([]weather.PlaceCandidate, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", strconv.Itoa(limit))
	values.Set("language", "en")
	values.Set("format", "json")

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Admin1    string  `json:"admin1"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := g.getJSON(ctx, g.baseURL+"?"+values.Encode(), &payload); err != nil {
		return nil, err
	}

	candidates := make([]weather.PlaceCandidate, 0, len(payload.Results))
	for _, r := range payload.Results {
		candidates = append(candidates, weather.PlaceCandidate{
			Name:    r.Name,
			Country: r.Country,
			Region:  r.Admin1,
			Coordinates: weather.Coordinates{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
			},
		})
	}
	return candidates, nil
}

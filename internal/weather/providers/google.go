package providers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kelvins/geocoder"
	"github.com/kelvins/geocoder/structs"

	"github.com/i474232898/weather-prediction/internal/weather"
)

var errGeocodeStatus = errors.New("geocoding request rejected")

// GoogleReverseGeocoder implements weather.ReverseGeocoder with the Google
// Geocoding API. Requests go through the shared upstream helper; only the
// endpoint and response shapes come from kelvins/geocoder.
type GoogleReverseGeocoder struct {
	upstream
	baseURL string
	apiKey  string
}

func NewGoogleReverseGeocoder(apiKey string, opts Options) *GoogleReverseGeocoder {
	if opts.BaseURL == "" {
		opts.BaseURL = geocoder.ApiUrl
	}
	return &GoogleReverseGeocoder{
		upstream: newUpstream("google-reverse", opts),
		baseURL:  strings.TrimRight(opts.BaseURL, "?"),
		apiKey:   apiKey,
	}
}

func (g *GoogleReverseGeocoder) Reverse(ctx context.Context, c weather.Coordinates) (weather.Address, error) {
	values := url.Values{}
	values.Set("latlng", strconv.FormatFloat(c.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	if g.apiKey != "" {
		values.Set("key", g.apiKey)
	}

	var results structs.Results
	if err := g.getJSON(ctx, g.baseURL+"?"+values.Encode(), &results); err != nil {
		return weather.Address{}, err
	}

	switch strings.ToUpper(results.Status) {
	case "OK":
	case "ZERO_RESULTS":
		// Open water and similar points have no address.
		return weather.Address{}, nil
	default:
		return weather.Address{}, fmt.Errorf("%s: %w: %s %s", g.name, errGeocodeStatus, results.Status, results.ErrorMessage)
	}
	if len(results.Results) == 0 {
		return weather.Address{}, nil
	}

	return googleAddress(results.Results[0].AddressComponents), nil
}

func googleAddress(components []structs.Address) weather.Address {
	var addr weather.Address
	for _, comp := range components {
		for _, typ := range comp.Types {
			switch typ {
			case "locality":
				addr.City = comp.LongName
			case "postal_town", "administrative_area_level_3":
				if addr.Town == "" {
					addr.Town = comp.LongName
				}
			case "sublocality", "neighborhood":
				if addr.Village == "" {
					addr.Village = comp.LongName
				}
			case "country":
				addr.Country = comp.LongName
			}
		}
	}
	return addr
}

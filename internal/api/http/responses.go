package httpapi

import "github.com/i474232898/weather-prediction/internal/weather"

type errorResponse struct {
	Success     bool         `json:"success"`
	Error       string       `json:"error"`
	Suggestions []suggestion `json:"suggestions,omitempty"`
}

func failure(msg string) errorResponse {
	return errorResponse{Success: false, Error: msg}
}

type suggestion struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1"`
}

func newSuggestions(candidates []weather.PlaceCandidate) []suggestion {
	out := make([]suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, suggestion{
			Name:      c.Name,
			Country:   c.Country,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Admin1:    c.Region,
		})
	}
	return out
}

type weatherResponse struct {
	Success     bool     `json:"success"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Temperature int      `json:"temperature"`
	Humidity    float64  `json:"humidity"`
	WindSpeed   int      `json:"windSpeed"`
	Condition   string   `json:"condition,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// newWeatherResponse echoes coordinates only for name-based lookups.
func newWeatherResponse(loc weather.ResolvedLocation, r weather.Reading, echoCoordinates bool) weatherResponse {
	resp := weatherResponse{
		Success:     true,
		City:        loc.Name,
		Country:     loc.Country,
		Temperature: int(r.Temperature),
		Humidity:    r.Humidity,
		WindSpeed:   int(r.WindSpeed),
		Condition:   string(r.Condition),
	}
	if echoCoordinates {
		lat, lon := loc.Coordinates.Latitude, loc.Coordinates.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lon
	}
	return resp
}

type predictResponse struct {
	Result      string  `json:"result"`
	Confidence  string  `json:"confidence"`
	Sunny       float64 `json:"sunny"`
	Rainy       float64 `json:"rainy"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

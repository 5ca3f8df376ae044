package httpapi

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-prediction/internal/observability"
	"github.com/i474232898/weather-prediction/internal/prediction"
	"github.com/i474232898/weather-prediction/internal/weather"
)

var validate = validator.New()

const (
	msgMissingParameters  = "Missing parameters"
	msgInvalidCoordinates = "Invalid coordinates"
	msgMultipleCities     = "Multiple cities found"
	msgCityNotFound       = "City not found"
	msgFetchFailed        = "Failed to fetch weather data"
	msgPredictionFailed   = "Prediction failed"
)

var (
	errMissingParameters  = errors.New(msgMissingParameters)
	errInvalidCoordinates = errors.New(msgInvalidCoordinates)
)

// WeatherService is what the /weather handler needs from the domain layer.
type WeatherService interface {
	Resolve(ctx context.Context, q weather.Query) weather.Outcome
	Fetch(ctx context.Context, c weather.Coordinates) (weather.Reading, error)
}

// RouteOptions configures RegisterRoutes.
type RouteOptions struct {
	// Metrics defaults to an unregistered set when nil.
	Metrics *observability.Metrics
	// RequestTimeout bounds all upstream work for one /weather request.
	RequestTimeout time.Duration
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service WeatherService, opts RouteOptions) {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetricsForTesting()
	}

	app.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failure(err.Error()))
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		out := service.Resolve(ctx, q)
		opts.Metrics.Resolutions.WithLabelValues(weather.OutcomeName(out)).Inc()

		switch o := out.(type) {
		case weather.Resolved:
			reading, err := service.Fetch(ctx, o.Location.Coordinates)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(failure(msgFetchFailed))
			}
			return c.JSON(newWeatherResponse(o.Location, reading, q.City != ""))
		case weather.Ambiguous:
			resp := failure(msgMultipleCities)
			resp.Suggestions = newSuggestions(o.Candidates)
			return c.Status(fiber.StatusMultipleChoices).JSON(resp)
		case weather.NotFound:
			return c.Status(fiber.StatusNotFound).JSON(failure(msgCityNotFound))
		case weather.UpstreamFailure:
			return c.Status(fiber.StatusInternalServerError).JSON(failure(msgFetchFailed))
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "unhandled resolution outcome")
		}
	})

	app.Post("/predict", func(c *fiber.Ctx) error {
		reading := weather.Reading{
			Temperature: parseFormFloat(c.FormValue("temperature")),
			Humidity:    parseFormFloat(c.FormValue("humidity")),
			WindSpeed:   parseFormFloat(c.FormValue("wind_speed")),
		}

		result, err := prediction.Classify(reading)
		if err != nil {
			var verr *prediction.ValidationError
			if errors.As(err, &verr) {
				opts.Metrics.Predictions.WithLabelValues("invalid").Inc()
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
			}
			return err
		}

		opts.Metrics.Predictions.WithLabelValues(string(result.Label)).Inc()
		return c.JSON(predictResponse{
			Result:      string(result.Label),
			Confidence:  result.ConfidenceString(),
			Sunny:       result.Sunny,
			Rainy:       result.Rainy,
			Temperature: reading.Temperature,
			Humidity:    reading.Humidity,
			WindSpeed:   reading.WindSpeed,
		})
	})
}

// coordinateQuery holds the lat/lon query parameters once parsed.
type coordinateQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// parseWeatherQuery prefers city over coordinates; both lat and lon are
// needed for the coordinate form.
func parseWeatherQuery(c *fiber.Ctx) (weather.Query, error) {
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		return weather.CityQuery(city, strings.TrimSpace(c.Query("selectCity"))), nil
	}

	latStr, lonStr := strings.TrimSpace(c.Query("lat")), strings.TrimSpace(c.Query("lon"))
	if latStr == "" || lonStr == "" {
		return weather.Query{}, errMissingParameters
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return weather.Query{}, errInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return weather.Query{}, errInvalidCoordinates
	}

	cq := coordinateQuery{Lat: lat, Lon: lon}
	if err := validate.Struct(cq); err != nil {
		return weather.Query{}, errInvalidCoordinates
	}

	return weather.CoordinatesQuery(weather.Coordinates{Latitude: cq.Lat, Longitude: cq.Lon}), nil
}

// parseFormFloat returns NaN for anything that is not entirely a number
// ("25abc" included), which the classifier reports as invalid input.
func parseFormFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

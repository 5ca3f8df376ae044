package weather

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-prediction/internal/common"
)

// CandidateLimit is how many forward-geocoding matches are requested per name.
const CandidateLimit = 10

// Query identifies a location either by name (with an optional country used to
// pick among same-named places) or by coordinates. A non-empty City wins.
type Query struct {
	City        string
	Country     string
	Coordinates *Coordinates
}

// CityQuery builds a name-based query.
func CityQuery(city, country string) Query {
	return Query{City: city, Country: country}
}

// CoordinatesQuery builds a coordinate-based query.
func CoordinatesQuery(c Coordinates) Query {
	return Query{Coordinates: &c}
}

// Resolver turns a Query into exactly one Outcome.
type Resolver struct {
	forward ForwardGeocoder
	reverse ReverseGeocoder
	logger  logrus.FieldLogger
}

// NewResolver creates a Resolver over the given geocoders.
func NewResolver(forward ForwardGeocoder, reverse ReverseGeocoder, logger logrus.FieldLogger) *Resolver {
	return &Resolver{
		forward: forward,
		reverse: reverse,
		logger:  logger,
	}
}

// Resolve never returns an error; dependency failures come back as UpstreamFailure.
func (r *Resolver) Resolve(ctx context.Context, q Query) Outcome {
	city := strings.TrimSpace(q.City)
	switch {
	case city != "":
		return r.resolveName(ctx, city, strings.TrimSpace(q.Country))
	case q.Coordinates != nil:
		return r.resolveCoordinates(ctx, *q.Coordinates)
	default:
		return NotFound{}
	}
}

func (r *Resolver) resolveName(ctx context.Context, city, country string) Outcome {
	candidates, err := r.forward.Search(ctx, city, CandidateLimit)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"city": city, "error": err}).Warn("forward geocoding failed")
		return UpstreamFailure{Err: err}
	}
	if len(candidates) == 0 {
		return NotFound{}
	}

	var selected PlaceCandidate
	switch {
	case country != "":
		selected = candidates[0]
		matched := false
		for _, c := range candidates {
			if c.Name == city && c.Country == country {
				selected = c
				matched = true
				break
			}
		}
		if !matched {
			// No exact name+country match: the first candidate stands in.
			r.logger.WithFields(logrus.Fields{
				"city":     city,
				"country":  country,
				"fallback": selected.Name + ", " + selected.Country,
			}).Warn("disambiguation country matched no candidate; using first candidate")
		}
	case len(candidates) > 1:
		return Ambiguous{Candidates: candidates}
	default:
		selected = candidates[0]
	}

	return Resolved{Location: ResolvedLocation{
		Name:        selected.Name,
		Country:     selected.Country,
		Coordinates: selected.Coordinates,
	}}
}

func (r *Resolver) resolveCoordinates(ctx context.Context, c Coordinates) Outcome {
	addr, err := r.reverse.Reverse(ctx, c)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"lat":   c.Latitude,
			"lon":   c.Longitude,
			"error": err,
		}).Warn("reverse geocoding failed")
		return UpstreamFailure{Err: err}
	}

	return Resolved{Location: ResolvedLocation{
		Name:        common.FirstNonEmpty(addr.City, addr.Town, addr.Village, UnknownPlace),
		Country:     common.FirstNonEmpty(addr.Country, UnknownPlace),
		Coordinates: c,
	}}
}

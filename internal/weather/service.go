package weather

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Service wires the resolver and fetcher behind one type for the HTTP layer.
type Service struct {
	resolver *Resolver
	fetcher  *Fetcher
	logger   logrus.FieldLogger
}

// NewService creates a new Service.
func NewService(resolver *Resolver, fetcher *Fetcher, logger logrus.FieldLogger) *Service {
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Resolve delegates to the resolver and logs the outcome.
func (s *Service) Resolve(ctx context.Context, q Query) Outcome {
	out := s.resolver.Resolve(ctx, q)

	fields := logrus.Fields{"outcome": OutcomeName(out)}
	if q.City != "" {
		fields["city"] = q.City
		if q.Country != "" {
			fields["select_country"] = q.Country
		}
	} else if q.Coordinates != nil {
		fields["lat"] = q.Coordinates.Latitude
		fields["lon"] = q.Coordinates.Longitude
	}
	if a, ok := out.(Ambiguous); ok {
		fields["candidates"] = len(a.Candidates)
	}
	s.logger.WithFields(fields).Debug("location resolved")

	return out
}

// Fetch delegates to the fetcher.
func (s *Service) Fetch(ctx context.Context, c Coordinates) (Reading, error) {
	reading, err := s.fetcher.Fetch(ctx, c)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"lat":   c.Latitude,
			"lon":   c.Longitude,
			"error": err,
		}).Warn("current conditions fetch failed")
		return Reading{}, err
	}
	return reading, nil
}

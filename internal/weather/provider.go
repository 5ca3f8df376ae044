package weather

import (
	"context"
)

// ForwardGeocoder turns a place name into candidate places, in source order.
type ForwardGeocoder interface {
	Search(ctx context.Context, name string, limit int) ([]PlaceCandidate, error)
}

// ReverseGeocoder turns coordinates into a place description.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, c Coordinates) (Address, error)
}

// ConditionsProvider returns current conditions for a point, in Celsius,
// percent and km/h.
type ConditionsProvider interface {
	Current(ctx context.Context, c Coordinates) (Conditions, error)
}

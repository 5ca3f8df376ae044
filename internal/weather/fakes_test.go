package weather

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type fakeForward struct {
	candidates []PlaceCandidate
	err        error
	calls      int
	lastName   string
	lastLimit  int
}

func (f *fakeForward) Search(_ context.Context, name string, limit int) ([]PlaceCandidate, error) {
	f.calls++
	f.lastName = name
	f.lastLimit = limit
	return f.candidates, f.err
}

type fakeReverse struct {
	addr  Address
	err   error
	calls int
}

func (f *fakeReverse) Reverse(_ context.Context, _ Coordinates) (Address, error) {
	f.calls++
	return f.addr, f.err
}

type fakeConditions struct {
	cond Conditions
	err  error
	last Coordinates
}

func (f *fakeConditions) Current(_ context.Context, c Coordinates) (Conditions, error) {
	f.last = c
	return f.cond, f.err
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func springfields() []PlaceCandidate {
	return []PlaceCandidate{
		{Name: "Springfield", Country: "United States", Region: "Illinois", Coordinates: Coordinates{Latitude: 39.80172, Longitude: -89.64371}},
		{Name: "Springfield", Country: "Australia", Region: "Queensland", Coordinates: Coordinates{Latitude: -27.65389, Longitude: 152.91667}},
		{Name: "Springfield", Country: "Canada", Region: "Manitoba", Coordinates: Coordinates{Latitude: 49.91758, Longitude: -96.79862}},
	}
}

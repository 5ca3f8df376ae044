package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(fwd *fakeForward, rev *fakeReverse) *Resolver {
	return NewResolver(fwd, rev, discardLogger())
}

func TestResolve_MultipleCandidatesAmbiguous(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()}
	r := newTestResolver(fwd, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Springfield", ""))

	amb, ok := out.(Ambiguous)
	require.True(t, ok, "expected Ambiguous, got %T", out)
	assert.Equal(t, springfields(), amb.Candidates)
	assert.Equal(t, "Springfield", fwd.lastName)
	assert.Equal(t, CandidateLimit, fwd.lastLimit)
}

func TestResolve_DisambiguationPicksMatchingCountry(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()}
	r := newTestResolver(fwd, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Springfield", "Australia"))

	res, ok := out.(Resolved)
	require.True(t, ok, "expected Resolved, got %T", out)
	assert.Equal(t, "Springfield", res.Location.Name)
	assert.Equal(t, "Australia", res.Location.Country)
	assert.Equal(t, Coordinates{Latitude: -27.65389, Longitude: 152.91667}, res.Location.Coordinates)
}

func TestResolve_DisambiguationFallsBackToFirstCandidate(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()}
	r := newTestResolver(fwd, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Springfield", "Narnia"))

	res, ok := out.(Resolved)
	require.True(t, ok, "expected Resolved, got %T", out)
	assert.Equal(t, "United States", res.Location.Country)
	assert.Equal(t, springfields()[0].Coordinates, res.Location.Coordinates)
}

func TestResolve_DisambiguationRequiresNameMatch(t *testing.T) {
	candidates := []PlaceCandidate{
		{Name: "Paris", Country: "France", Coordinates: Coordinates{Latitude: 48.85341, Longitude: 2.3488}},
		{Name: "Paris Township", Country: "United States", Coordinates: Coordinates{Latitude: 41.1, Longitude: -81.2}},
		{Name: "Paris", Country: "United States", Coordinates: Coordinates{Latitude: 33.66094, Longitude: -95.55551}},
	}
	r := newTestResolver(&fakeForward{candidates: candidates}, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Paris", "United States"))

	res, ok := out.(Resolved)
	require.True(t, ok)
	assert.Equal(t, "Paris", res.Location.Name)
	assert.Equal(t, 33.66094, res.Location.Coordinates.Latitude)
}

func TestResolve_SingleCandidateResolvesDirectly(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()[2:]}
	r := newTestResolver(fwd, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Springfield", ""))

	res, ok := out.(Resolved)
	require.True(t, ok, "expected Resolved, got %T", out)
	assert.Equal(t, ResolvedLocation{
		Name:        "Springfield",
		Country:     "Canada",
		Coordinates: Coordinates{Latitude: 49.91758, Longitude: -96.79862},
	}, res.Location)
}

func TestResolve_SameQueryTwiceIsStable(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()[:1]}
	r := newTestResolver(fwd, &fakeReverse{})

	first := r.Resolve(context.Background(), CityQuery("Springfield", ""))
	second := r.Resolve(context.Background(), CityQuery("Springfield", ""))

	assert.Equal(t, first, second)
	assert.Equal(t, 2, fwd.calls)
}

func TestResolve_NoCandidatesNotFound(t *testing.T) {
	r := newTestResolver(&fakeForward{}, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Atlantis", "Greece"))

	assert.IsType(t, NotFound{}, out)
}

func TestResolve_ForwardErrorUpstreamFailure(t *testing.T) {
	boom := errors.New("connection reset")
	r := newTestResolver(&fakeForward{err: boom}, &fakeReverse{})

	out := r.Resolve(context.Background(), CityQuery("Berlin", ""))

	uf, ok := out.(UpstreamFailure)
	require.True(t, ok, "expected UpstreamFailure, got %T", out)
	assert.ErrorIs(t, uf, boom)
	assert.ErrorIs(t, uf, ErrUpstream)
}

func TestResolve_CoordinatesPreferCityTownVillage(t *testing.T) {
	tests := []struct {
		name        string
		addr        Address
		wantName    string
		wantCountry string
	}{
		{"city", Address{City: "Lyon", Town: "Villeurbanne", Country: "France"}, "Lyon", "France"},
		{"town", Address{Town: "Annecy", Village: "Talloires", Country: "France"}, "Annecy", "France"},
		{"village", Address{Village: "Giverny", Country: "France"}, "Giverny", "France"},
		{"nothing", Address{}, UnknownPlace, UnknownPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rev := &fakeReverse{addr: tt.addr}
			fwd := &fakeForward{}
			r := newTestResolver(fwd, rev)
			coords := Coordinates{Latitude: 45.76, Longitude: 4.84}

			out := r.Resolve(context.Background(), CoordinatesQuery(coords))

			res, ok := out.(Resolved)
			require.True(t, ok, "expected Resolved, got %T", out)
			assert.Equal(t, tt.wantName, res.Location.Name)
			assert.Equal(t, tt.wantCountry, res.Location.Country)
			assert.Equal(t, coords, res.Location.Coordinates)
			assert.Equal(t, 0, fwd.calls)
		})
	}
}

func TestResolve_ReverseErrorUpstreamFailure(t *testing.T) {
	r := newTestResolver(&fakeForward{}, &fakeReverse{err: context.DeadlineExceeded})

	out := r.Resolve(context.Background(), CoordinatesQuery(Coordinates{Latitude: 1, Longitude: 2}))

	uf, ok := out.(UpstreamFailure)
	require.True(t, ok)
	assert.ErrorIs(t, uf, context.DeadlineExceeded)
}

func TestResolve_CityTakesPrecedenceOverCoordinates(t *testing.T) {
	fwd := &fakeForward{candidates: springfields()[:1]}
	rev := &fakeReverse{}
	r := newTestResolver(fwd, rev)

	c := Coordinates{Latitude: 10, Longitude: 10}
	out := r.Resolve(context.Background(), Query{City: "Springfield", Coordinates: &c})

	assert.IsType(t, Resolved{}, out)
	assert.Equal(t, 1, fwd.calls)
	assert.Equal(t, 0, rev.calls)
}

func TestResolve_EmptyQueryNotFound(t *testing.T) {
	r := newTestResolver(&fakeForward{}, &fakeReverse{})
	assert.IsType(t, NotFound{}, r.Resolve(context.Background(), Query{City: "   "}))
}

func TestOutcomeName(t *testing.T) {
	assert.Equal(t, "resolved", OutcomeName(Resolved{}))
	assert.Equal(t, "ambiguous", OutcomeName(Ambiguous{}))
	assert.Equal(t, "not_found", OutcomeName(NotFound{}))
	assert.Equal(t, "upstream_failure", OutcomeName(UpstreamFailure{}))
}

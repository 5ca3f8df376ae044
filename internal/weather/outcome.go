package weather

import "errors"

// ErrUpstream marks failures of an external dependency (transport, status or payload).
var ErrUpstream = errors.New("upstream failure")

// Outcome is the result of resolving a location query. Exactly one of
// Resolved, Ambiguous, NotFound or UpstreamFailure; callers type-switch on it.
type Outcome interface {
	outcome()
}

// Resolved carries the single place a query resolved to.
type Resolved struct {
	Location ResolvedLocation
}

// Ambiguous carries every candidate, in the order the geocoder returned them.
// The caller has to ask again with a country.
type Ambiguous struct {
	Candidates []PlaceCandidate
}

// NotFound means the geocoder had no match for the name.
type NotFound struct{}

// UpstreamFailure wraps the dependency error that stopped resolution.
type UpstreamFailure struct {
	Err error
}

func (Resolved) outcome()        {}
func (Ambiguous) outcome()       {}
func (NotFound) outcome()        {}
func (UpstreamFailure) outcome() {}

func (u UpstreamFailure) Error() string {
	if u.Err == nil {
		return ErrUpstream.Error()
	}
	return ErrUpstream.Error() + ": " + u.Err.Error()
}

func (u UpstreamFailure) Unwrap() []error {
	return []error{ErrUpstream, u.Err}
}

// OutcomeName returns a short label for logs and metrics.
func OutcomeName(o Outcome) string {
	switch o.(type) {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case NotFound:
		return "not_found"
	case UpstreamFailure:
		return "upstream_failure"
	default:
		return "unknown"
	}
}

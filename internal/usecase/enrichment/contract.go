package enrichment

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain/locator"
)

// Enricher fetches raw demographic attributes for a point.
type Enricher interface {
	Enrich(ctx context.Context, token string, p orb.Point, variables []string) (map[string]any, error)
}

// Geocoder resolves an address to its best candidate.
type Geocoder interface {
	Geocode(ctx context.Context, token, address string) (locator.Candidate, error)
}

// Router solves a route through ordered stops.
type Router interface {
	Route(ctx context.Context, token string, stops []orb.Point) (locator.Route, error)
}

// ServiceAreaSolver computes drive-time bands around a facility.
type ServiceAreaSolver interface {
	ServiceArea(ctx context.Context, token string, facility orb.Point, breaks []float64) ([]locator.ServiceArea, error)
}

// Backend is the full geo backend used by the gateway.
type Backend interface {
	Enricher
	Geocoder
	Router
	ServiceAreaSolver
}

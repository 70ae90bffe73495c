package tools

import (
	"context"

	"github.com/paulmach/orb"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/locator"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// Gateway is the enrichment gateway surface the tools use.
type Gateway interface {
	Enrich(ctx context.Context, sess *domsess.Session, lat, lng float64, d record.Domain) (domen.Result, error)
	Geocode(ctx context.Context, sess *domsess.Session, address string) (locator.Candidate, error)
	Route(ctx context.Context, sess *domsess.Session, stops []orb.Point) (locator.Route, error)
	ServiceArea(ctx context.Context, sess *domsess.Session, facility orb.Point, breaks []float64) ([]locator.ServiceArea, error)
}

// Sessions loads and stores interaction state.
type Sessions interface {
	Get(ctx context.Context, id string) (*domsess.Session, error)
	Save(ctx context.Context, s *domsess.Session) error
}

// Board publishes the latest result per (session, tool).
type Board interface {
	Publish(ctx context.Context, e domdisp.Entry) error
	Latest(ctx context.Context, sessionID, tool string) (domdisp.Entry, error)
}

// Datasets is the catalog view used for nearest-record lookups.
type Datasets interface {
	Records(d record.Domain) []record.Record
}

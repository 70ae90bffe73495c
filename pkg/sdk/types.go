package geolens

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Domain selects a risk dataset and its overlay.
type Domain string

// Domain constants.
const (
	DomainFraud        Domain = "fraud"
	DomainAccess       Domain = "access"
	DomainCyber        Domain = "cyber"
	DomainRetention    Domain = "retention"
	DomainTransparency Domain = "transparency"
	DomainRx           Domain = "rx"
)

// Stat is one labelled overlay summary value.
type Stat struct {
	Label string
	Value string
}

// Overlay is a derived domain overlay.
type Overlay struct {
	Domain  Domain
	Filter  string // transparency only
	Summary []Stat
	GeoJSON *geojson.FeatureCollection
}

// Session is the public view of an interaction session.
type Session struct {
	ID                string
	Authenticated     bool
	Label             string
	ActiveTab         string
	PendingRouteStops int
	CreatedAt         time.Time
}

// Provenance tells whether enrichment values came from the backend.
type Provenance string

// Provenance constants.
const (
	ProvenanceLive      Provenance = "live"
	ProvenanceSimulated Provenance = "simulated"
)

// Enrichment is demographic context for a point.
type Enrichment struct {
	Provenance Provenance
	Reason     string // why a simulated result was returned
	Schema     string // "equity" or "market"
	Lat        float64
	Lng        float64
	Values     map[string]any
}

// ToolResult is the outcome of an interactive tool, as shown on the display board.
type ToolResult struct {
	Tool        string
	OK          bool
	Message     string
	Data        json.RawMessage
	Overlay     *geojson.FeatureCollection
	PublishedAt time.Time
}

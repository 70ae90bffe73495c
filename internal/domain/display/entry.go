// Package display holds the "most recent result" shown for an interactive tool.
package display

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Status of a published tool result.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Entry is the latest outcome of one tool in one session. A newer Publish
// replaces it regardless of when the request started.
type Entry struct {
	SessionID   string                     `json:"session_id"`
	Tool        string                     `json:"tool"`
	Status      Status                     `json:"status"`
	Message     string                     `json:"message,omitempty"`
	Data        json.RawMessage            `json:"data,omitempty"`
	Overlay     *geojson.FeatureCollection `json:"overlay,omitempty"`
	PublishedAt time.Time                  `json:"published_at"`
}

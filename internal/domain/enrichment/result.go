package enrichment

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Provenance tells where an enrichment result came from.
type Provenance string

const (
	ProvenanceLive      Provenance = "live"
	ProvenanceSimulated Provenance = "simulated"
)

// Result is an immutable enrichment for one point. Every field of its schema is present.
type Result struct {
	provenance Provenance
	reason     string
	domain     record.Domain
	schema     Schema
	lat, lng   float64
	numbers    map[string]float64
	texts      map[string]string
}

// NewResult builds a result and checks that values cover the schema exactly.
// Missing fields or a value of the wrong kind yield ErrMalformedResponse.
func NewResult(
	p Provenance, d record.Domain, lat, lng float64,
	numbers map[string]float64, texts map[string]string,
) (Result, error) {
	s := SchemaFor(d)
	r := Result{
		provenance: p,
		domain:     d,
		schema:     s,
		lat:        lat,
		lng:        lng,
		numbers:    make(map[string]float64),
		texts:      make(map[string]string),
	}
	for _, f := range s.Fields() {
		switch f.Kind {
		case KindNumber:
			v, ok := numbers[f.Name]
			if !ok {
				return Result{}, fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, f.Name)
			}
			r.numbers[f.Name] = v
		case KindText:
			v, ok := texts[f.Name]
			if !ok {
				return Result{}, fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, f.Name)
			}
			r.texts[f.Name] = v
		}
	}
	return r, nil
}

// WithReason records why a simulated result was served.
func (r Result) WithReason(reason string) Result {
	r.reason = reason
	return r
}

// Provenance returns Live or Simulated.
func (r Result) Provenance() Provenance { return r.provenance }

// Reason returns the fallback reason, empty for live results.
func (r Result) Reason() string { return r.reason }

// Domain returns the domain the result was requested for.
func (r Result) Domain() record.Domain { return r.domain }

// Schema returns the field schema.
func (r Result) Schema() Schema { return r.schema }

// Lat returns the enriched latitude.
func (r Result) Lat() float64 { return r.lat }

// Lng returns the enriched longitude.
func (r Result) Lng() float64 { return r.lng }

// Number returns a numeric field.
func (r Result) Number(name string) (float64, bool) {
	v, ok := r.numbers[name]
	return v, ok
}

// Text returns a text field.
func (r Result) Text(name string) (string, bool) {
	v, ok := r.texts[name]
	return v, ok
}

// Keys returns all field names, sorted.
func (r Result) Keys() []string {
	keys := make([]string, 0, len(r.numbers)+len(r.texts))
	for k := range r.numbers {
		keys = append(keys, k)
	}
	for k := range r.texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns all fields in one map.
func (r Result) Values() map[string]any {
	out := make(map[string]any, len(r.numbers)+len(r.texts))
	for k, v := range r.numbers {
		out[k] = v
	}
	for k, v := range r.texts {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the result for API responses and the display board.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Provenance: r.provenance,
		Reason:     r.reason,
		Domain:     r.domain,
		Schema:     r.schema,
		Lat:        r.lat,
		Lng:        r.lng,
		Values:     r.Values(),
	})
}

type resultJSON struct {
	Provenance Provenance     `json:"provenance"`
	Reason     string         `json:"reason,omitempty"`
	Domain     record.Domain  `json:"domain"`
	Schema     Schema         `json:"schema"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	Values     map[string]any `json:"values"`
}

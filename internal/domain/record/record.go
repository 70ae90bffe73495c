package record

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
)

// Record is one geo-located dataset entry (immutable value object).
type Record struct {
	id     string
	domain Domain
	name   string
	lat    float64
	lng    float64
	attrs  Attributes
}

// New validates and creates a Record.
func New(id string, d Domain, name string, lat, lng float64, attrs Attributes) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("record id is required: %w", domain.ErrInvalidInput)
	}
	if !d.IsValid() {
		return Record{}, fmt.Errorf("record %s: unknown domain %q: %w", id, d, domain.ErrInvalidInput)
	}
	if !geo.ValidateCoordinates(lat, lng) {
		return Record{}, fmt.Errorf("record %s: coordinates (%v, %v) out of range: %w",
			id, lat, lng, domain.ErrInvalidInput)
	}
	return Record{id: id, domain: d, name: name, lat: lat, lng: lng, attrs: attrs}, nil
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// Domain returns the dataset tag.
func (r Record) Domain() Domain { return r.domain }

// Name returns the display title.
func (r Record) Name() string { return r.name }

// Lat returns latitude in degrees.
func (r Record) Lat() float64 { return r.lat }

// Lng returns longitude in degrees.
func (r Record) Lng() float64 { return r.lng }

// Point returns the location as (lon, lat).
func (r Record) Point() orb.Point { return orb.Point{r.lng, r.lat} }

// Attributes returns the attribute bag.
func (r Record) Attributes() Attributes { return r.attrs }

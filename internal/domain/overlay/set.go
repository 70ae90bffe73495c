package overlay

import (
	"github.com/paulmach/orb/geojson"

	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Stat is one labelled summary value.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Set is the full derived overlay of one domain.
type Set struct {
	Domain   record.Domain
	Elements []Element
	Summary  []Stat
}

// Count returns how many elements carry the category.
func (s Set) Count(cat Category) int {
	n := 0
	for _, e := range s.Elements {
		if e.category == cat {
			n++
		}
	}
	return n
}

// ByCategory returns the elements with the category, in order.
func (s Set) ByCategory(cat Category) []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Stat returns a summary value by label.
func (s Set) Stat(label string) (string, bool) {
	for _, st := range s.Summary {
		if st.Label == label {
			return st.Value, true
		}
	}
	return "", false
}

// FeatureCollection encodes the elements as GeoJSON features.
// Style and popup content go into properties.
func (s Set) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range s.Elements {
		fc.Append(Feature(e))
	}
	return fc
}

// Feature encodes a single element.
func Feature(e Element) *geojson.Feature {
	f := geojson.NewFeature(e.geometry)
	st := e.style
	f.Properties["kind"] = string(e.kind)
	f.Properties["category"] = string(e.category)
	f.Properties["fill"] = st.Fill.CSS()
	f.Properties["outline"] = st.Outline.CSS()
	f.Properties["outline_width"] = st.OutlineWidth
	if st.Dash != "" {
		f.Properties["dash"] = string(st.Dash)
	}
	if e.kind == KindMarker {
		f.Properties["size"] = st.Size
		f.Properties["shape"] = string(st.Shape)
	}
	if e.ref != "" {
		f.Properties["ref"] = e.ref
	}
	if e.HasContent() {
		f.Properties["title"] = e.title
		f.Properties["content"] = e.Content()
	}
	return f
}

package overlay

import (
	"github.com/paulmach/orb"
)

// Kind is the geometry variant of an element.
type Kind string

const (
	KindMarker  Kind = "marker"
	KindPolygon Kind = "polygon"
	KindLine    Kind = "line"
)

// Category tags the role of an element in a layer.
type Category string

const (
	CategoryMarker      Category = "marker"
	CategoryHalo        Category = "halo"
	CategoryLink        Category = "link"
	CategoryBoundary    Category = "boundary"
	CategoryPulse       Category = "pulse"
	CategoryServiceArea Category = "service-area"
	CategoryCluster     Category = "cluster"
	CategoryAllocation  Category = "allocation"
	CategoryCompetitor  Category = "competitor"
	CategoryAlert       Category = "alert"
	CategorySuitability Category = "suitability"
	CategoryCoverage    Category = "coverage"
	CategoryDensity     Category = "density"
	CategoryTrace       Category = "trace"
	CategoryBlast       Category = "blast"
	CategoryDesert      Category = "desert"
	CategoryPin         Category = "pin"
	CategoryRoute       Category = "route"
)

// Element is one drawable overlay item (immutable value object).
type Element struct {
	kind     Kind
	category Category
	geometry orb.Geometry
	style    Style
	ref      string
	title    string
	content  []string
}

// NewMarker creates a point element.
func NewMarker(cat Category, p orb.Point, s Style) Element {
	if s.Shape == "" {
		s.Shape = ShapeCircle
	}
	return Element{kind: KindMarker, category: cat, geometry: p, style: s}
}

// NewPolygon creates a single-ring polygon element.
func NewPolygon(cat Category, ring orb.Ring, s Style) Element {
	return Element{kind: KindPolygon, category: cat, geometry: orb.Polygon{ring}, style: s}
}

// NewLine creates a polyline element.
func NewLine(cat Category, ls orb.LineString, s Style) Element {
	return Element{kind: KindLine, category: cat, geometry: ls, style: s}
}

// WithContent attaches a title and description lines.
func (e Element) WithContent(title string, lines ...string) Element {
	e.title = title
	e.content = append([]string(nil), lines...)
	return e
}

// WithRef attaches the id of the record the element was derived from.
func (e Element) WithRef(id string) Element {
	e.ref = id
	return e
}

// Kind returns the geometry variant.
func (e Element) Kind() Kind { return e.kind }

// Category returns the role tag.
func (e Element) Category() Category { return e.category }

// Geometry returns the orb geometry (Point, Polygon or LineString).
func (e Element) Geometry() orb.Geometry { return e.geometry }

// Style returns the visual encoding.
func (e Element) Style() Style { return e.style }

// Ref returns the source record id, if any.
func (e Element) Ref() string { return e.ref }

// Title returns the popup title.
func (e Element) Title() string { return e.title }

// Content returns a copy of the description lines.
func (e Element) Content() []string { return append([]string(nil), e.content...) }

// HasContent reports whether a popup is attached.
func (e Element) HasContent() bool { return e.title != "" || len(e.content) > 0 }

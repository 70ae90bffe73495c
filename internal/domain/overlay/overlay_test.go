package overlay

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
)

func TestColorCSS(t *testing.T) {
	if got := RGBA(204, 0, 0, .85).CSS(); got != "rgba(204,0,0,0.85)" {
		t.Fatalf("css = %q", got)
	}
	if got := RGBA(1, 2, 3, 1).WithAlpha(0.1).CSS(); got != "rgba(1,2,3,0.1)" {
		t.Fatalf("css = %q", got)
	}
}

func TestElement_Immutable(t *testing.T) {
	e := NewMarker(CategoryMarker, orb.Point{1, 2}, Style{Size: 10}).WithContent("T", "a", "b")
	c := e.Content()
	c[0] = "x"
	if e.Content()[0] != "a" {
		t.Fatal("content mutated")
	}
	if e.Style().Shape != ShapeCircle {
		t.Errorf("default shape = %q", e.Style().Shape)
	}
}

func TestSet_CountAndStat(t *testing.T) {
	s := Set{
		Elements: []Element{
			NewMarker(CategoryMarker, orb.Point{0, 0}, Style{}),
			NewMarker(CategoryMarker, orb.Point{1, 0}, Style{}),
			NewLine(CategoryLink, orb.LineString{{0, 0}, {1, 0}}, Style{}),
		},
		Summary: []Stat{{Label: "Hot Spots", Value: "3"}},
	}
	if s.Count(CategoryMarker) != 2 || s.Count(CategoryLink) != 1 || s.Count(CategoryHalo) != 0 {
		t.Fatal("unexpected counts")
	}
	if v, ok := s.Stat("Hot Spots"); !ok || v != "3" {
		t.Fatalf("stat = %q %v", v, ok)
	}
	if len(s.ByCategory(CategoryLink)) != 1 {
		t.Fatal("ByCategory")
	}
}

func TestFeatureCollection_GeoJSON(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	s := Set{Elements: []Element{
		NewMarker(CategoryMarker, orb.Point{-80.19, 25.76}, Style{Fill: RGBA(204, 0, 0, .85), Size: 23}).
			WithRef("miami-dade-fl").WithContent("Miami-Dade, FL", "Anomaly Score: 94/100"),
		NewPolygon(CategoryHalo, ring, Style{Dash: DashDash}),
	}}
	data, err := json.Marshal(s.FeatureCollection())
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != "FeatureCollection" || len(decoded.Features) != 2 {
		t.Fatalf("unexpected collection: %s", data)
	}
	m := decoded.Features[0]
	if m.Geometry.Type != "Point" || m.Properties["ref"] != "miami-dade-fl" || m.Properties["fill"] != "rgba(204,0,0,0.85)" {
		t.Errorf("marker properties = %v", m.Properties)
	}
	p := decoded.Features[1]
	if p.Geometry.Type != "Polygon" || p.Properties["category"] != "halo" || p.Properties["dash"] != "dash" {
		t.Errorf("polygon properties = %v", p.Properties)
	}
	if _, ok := p.Properties["title"]; ok {
		t.Error("polygon without content must not carry a title")
	}
}

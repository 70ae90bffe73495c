package record

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/geolens/internal/domain"
)

func TestParseDomain(t *testing.T) {
	for _, d := range All() {
		got, err := ParseDomain(" " + string(d) + " ")
		if err != nil {
			t.Fatalf("ParseDomain(%q): %v", d, err)
		}
		if got != d {
			t.Errorf("got %q, want %q", got, d)
		}
	}
	if got, _ := ParseDomain("RX"); got != DomainRx {
		t.Errorf("case-insensitive parse failed: %q", got)
	}
	if _, err := ParseDomain("weather"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	if All()[0] != DomainFraud {
		t.Fatal("All must not expose internal slice")
	}
}

func TestNewAttributes_Types(t *testing.T) {
	a, err := NewAttributes(map[string]any{"score": 94, "diag": 8.2, "flag": true, "type": "datacenter"})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := a.Number("score"); !ok || v != 94 {
		t.Errorf("score = %v, %v", v, ok)
	}
	if !a.Flag("flag") || a.Flag("missing") {
		t.Error("flag lookup wrong")
	}
	if s, ok := a.Text("type"); !ok || s != "datacenter" {
		t.Errorf("type = %q", s)
	}
	if a.NumberOr("nope", 7) != 7 {
		t.Error("NumberOr default not used")
	}
	keys := a.Keys()
	if len(keys) != 4 || keys[0] != "diag" {
		t.Errorf("keys = %v", keys)
	}
}

func TestNewAttributes_Unsupported(t *testing.T) {
	if _, err := NewAttributes(map[string]any{"bad": []int{1}}); err == nil {
		t.Fatal("expected error for slice value")
	}
}

func TestAttributes_MapIsCopy(t *testing.T) {
	src := map[string]any{"score": 10.0}
	a, _ := NewAttributes(src)
	src["score"] = 99.0
	m := a.Map()
	m["score"] = 50.0
	if v, _ := a.Number("score"); v != 10 {
		t.Fatalf("attributes mutated: %v", v)
	}
}

func TestNew_Validation(t *testing.T) {
	attrs, _ := NewAttributes(nil)
	tests := []struct {
		name     string
		id       string
		d        Domain
		lat, lng float64
	}{
		{"empty id", "", DomainFraud, 0, 0},
		{"bad domain", "x", Domain("nope"), 0, 0},
		{"bad lat", "x", DomainFraud, 91, 0},
		{"bad lng", "x", DomainFraud, 0, 181},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, tc.d, "n", tc.lat, tc.lng, attrs); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	r, err := New("miami", DomainFraud, "Miami-Dade, FL", 25.76, -80.19, attrs)
	if err != nil {
		t.Fatal(err)
	}
	if r.Point().Lon() != -80.19 || r.Point().Lat() != 25.76 {
		t.Errorf("point = %v", r.Point())
	}
}

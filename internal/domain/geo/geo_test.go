package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func almost(a, b, eps float64) bool {
	if a > b {
		return a-b < eps
	}
	return b-a < eps
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{90.1, 0, false},
		{0, -180.5, false},
		{math.NaN(), 0, false},
	}
	for _, tc := range tests {
		if got := ValidateCoordinates(tc.lat, tc.lon); got != tc.want {
			t.Errorf("ValidateCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestPoint_Order(t *testing.T) {
	p := Point(25.76, -80.19)
	if p.Lat() != 25.76 || p.Lon() != -80.19 {
		t.Fatalf("unexpected point %v", p)
	}
}

func TestDistance_Planar(t *testing.T) {
	d := Distance(orb.Point{0, 0}, orb.Point{3, 4})
	if !almost(d, 5, 1e-12) {
		t.Fatalf("want 5, got %f", d)
	}
}

func TestDistanceKm_NewYork_London(t *testing.T) {
	// ~5,570 km
	d := DistanceKm(Point(40.7128, -74.0060), Point(51.5074, -0.1278))
	if d < 5500 || d > 5650 {
		t.Fatalf("want ~5570 km, got %f", d)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid([]orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	if c != (orb.Point{1, 1}) {
		t.Fatalf("want (1,1), got %v", c)
	}
	if Centroid(nil) != (orb.Point{}) {
		t.Fatal("empty centroid must be zero")
	}
}

func TestAngle(t *testing.T) {
	if a := Angle(orb.Point{0, 0}, orb.Point{0, 1}); !almost(a, math.Pi/2, 1e-12) {
		t.Fatalf("want pi/2, got %f", a)
	}
}

func TestOffset_Stretch(t *testing.T) {
	p := Offset(orb.Point{10, 20}, 1, 0)
	if !almost(p.Lon(), 11.4, 1e-12) || !almost(p.Lat(), 20, 1e-12) {
		t.Fatalf("unexpected offset %v", p)
	}
}

package overlay

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestCircleRing(t *testing.T) {
	c := orb.Point{-80.19, 25.76}
	ring := CircleRing(c, 2.2, 36)
	if len(ring) != 37 {
		t.Fatalf("len = %d, want 37", len(ring))
	}
	if ring[0] != ring[36] {
		t.Fatal("ring not closed")
	}
	if math.Abs(ring[0][0]-(c[0]+2.2*1.4)) > 1e-12 || ring[0][1] != c[1] {
		t.Errorf("first vertex = %v", ring[0])
	}
}

func TestCircleRing_Deterministic(t *testing.T) {
	a := CircleRing(orb.Point{1, 2}, 1.4, 30)
	b := CircleRing(orb.Point{1, 2}, 1.4, 30)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestServiceAreaRing_BoundsAndDeterminism(t *testing.T) {
	c := orb.Point{-74, 40.71}
	base := 1.8
	for seed := 0; seed < 50; seed++ {
		a := ServiceAreaRing(c, base, seed)
		b := ServiceAreaRing(c, base, seed)
		if len(a) != 13 {
			t.Fatalf("len = %d, want 13", len(a))
		}
		if a[0] != a[12] {
			t.Fatalf("seed %d: ring not closed", seed)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d vertex %d not deterministic", seed, i)
			}
			dx := (a[i][0] - c[0]) / 1.4
			dy := a[i][1] - c[1]
			r := math.Hypot(dx, dy)
			if r < 0.7*base-1e-9 || r > 1.3*base+1e-9 {
				t.Fatalf("seed %d vertex %d radius %f outside jitter bounds", seed, i, r)
			}
		}
	}
}

func TestServiceAreaRing_SeedChangesShape(t *testing.T) {
	a := ServiceAreaRing(orb.Point{0, 0}, 1, 1)
	b := ServiceAreaRing(orb.Point{0, 0}, 1, 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds must give different rings")
	}
}

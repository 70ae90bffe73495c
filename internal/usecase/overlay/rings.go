package overlay

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain/geo"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// serviceAreaSegments is the vertex count of a mock drive-time polygon.
const serviceAreaSegments = 12

// CircleRing returns n+1 points on a stretched circle; the last equals the first.
func CircleRing(center orb.Point, radius float64, n int) orb.Ring {
	if n < 3 {
		n = 3
	}
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, geo.Offset(center, radius, a))
	}
	ring[n] = ring[0]
	return ring
}

// ServiceAreaRing returns an irregular 12-segment ring around center. The
// radius of every vertex is jittered in [0.7, 1.3] x base by a sine of seed,
// so the same seed always yields the same shape.
func ServiceAreaRing(center orb.Point, base float64, seed int) orb.Ring {
	n := serviceAreaSegments
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		jitter := base * (0.7 + 0.6*math.Abs(math.Sin(float64(seed)*13.7+float64(i)*3.1)))
		ring = append(ring, geo.Offset(center, jitter, a))
	}
	// cos/sin at 2*pi differ from 0 in the last bits; close exactly.
	ring[n] = ring[0]
	return ring
}

func lineBetween(a, b record.Record) orb.LineString {
	return orb.LineString{a.Point(), b.Point()}
}

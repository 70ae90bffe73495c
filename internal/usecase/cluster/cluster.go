package cluster

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain/geo"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Cluster is a proximity group formed by Greedy.
type Cluster struct {
	// Seed is the input index of the record that opened the cluster.
	Seed     int
	Members  []record.Record
	Centroid orb.Point
	// Mean is the average of the attribute requested in Greedy; zero when absent.
	Mean float64
}

// Count returns the number of members.
func (c Cluster) Count() int { return len(c.Members) }

// Link is a pair of records closer than a threshold.
type Link struct {
	From     record.Record
	To       record.Record
	Distance float64
}

// Filter keeps records matching pred, preserving order.
func Filter(recs []record.Record, pred func(record.Record) bool) []record.Record {
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Greedy groups records in a single pass in input order. For every record not
// yet consumed, all other unconsumed records strictly within threshold join
// it and every member is consumed. A record with no neighbour forms no cluster.
// There is no merge pass, so chained neighbours may end up in different
// clusters or none.
func Greedy(recs []record.Record, threshold float64, meanAttr string) []Cluster {
	consumed := make([]bool, len(recs))
	var out []Cluster
	for i, seed := range recs {
		if consumed[i] {
			continue
		}
		members := []record.Record{seed}
		idx := []int{i}
		for j, other := range recs {
			if j == i || consumed[j] {
				continue
			}
			if geo.Distance(seed.Point(), other.Point()) < threshold {
				members = append(members, other)
				idx = append(idx, j)
			}
		}
		if len(members) < 2 {
			continue
		}
		for _, k := range idx {
			consumed[k] = true
		}
		out = append(out, Cluster{
			Seed:     i,
			Members:  members,
			Centroid: Centroid(members),
			Mean:     attrMean(members, meanAttr),
		})
	}
	return out
}

// Links returns every pair (i<j) strictly within threshold, independent of clusters.
func Links(recs []record.Record, threshold float64) []Link {
	var out []Link
	for i := 0; i < len(recs); i++ {
		for j := i + 1; j < len(recs); j++ {
			d := geo.Distance(recs[i].Point(), recs[j].Point())
			if d < threshold {
				out = append(out, Link{From: recs[i], To: recs[j], Distance: d})
			}
		}
	}
	return out
}

// Centroid is the arithmetic mean of member coordinates.
func Centroid(recs []record.Record) orb.Point {
	pts := make([]orb.Point, len(recs))
	for i, r := range recs {
		pts[i] = r.Point()
	}
	return geo.Centroid(pts)
}

// Boundary connects members in angular order around their centroid and closes
// the ring. It is not a hull. Returns false for fewer than two members.
func Boundary(recs []record.Record) (orb.Ring, bool) {
	if len(recs) < 2 {
		return nil, false
	}
	c := Centroid(recs)
	pts := make([]orb.Point, len(recs))
	for i, r := range recs {
		pts[i] = r.Point()
	}
	sort.SliceStable(pts, func(a, b int) bool {
		return geo.Angle(c, pts[a]) < geo.Angle(c, pts[b])
	})
	ring := make(orb.Ring, 0, len(pts)+1)
	ring = append(ring, pts...)
	ring = append(ring, pts[0])
	return ring, true
}

func attrMean(recs []record.Record, key string) float64 {
	if key == "" {
		return 0
	}
	var sum float64
	var n int
	for _, r := range recs {
		if v, ok := r.Attributes().Number(key); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// LngStretch widens rings horizontally so they look round on a Web Mercator
// map at mid latitudes.
const LngStretch = 1.4

// ValidateCoordinates checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Point builds an orb point from latitude/longitude degrees.
func Point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// Distance is the planar Euclidean distance in degrees over (lon, lat).
// It is only meaningful for relative proximity, not for real distances.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// DistanceKm returns the great-circle distance in kilometres.
func DistanceKm(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b) / 1000
}

// Centroid returns the arithmetic mean of the points. Zero value for empty input.
func Centroid(pts []orb.Point) orb.Point {
	if len(pts) == 0 {
		return orb.Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(pts))
	return orb.Point{sx / n, sy / n}
}

// Angle is the polar angle of p around center, atan2(dLat, dLon).
func Angle(center, p orb.Point) float64 {
	return math.Atan2(p.Lat()-center.Lat(), p.Lon()-center.Lon())
}

// Offset returns a point displaced by an angle and radius with longitudinal stretch.
func Offset(center orb.Point, radius, angle float64) orb.Point {
	return orb.Point{
		center.Lon() + radius*math.Cos(angle)*LngStretch,
		center.Lat() + radius*math.Sin(angle),
	}
}

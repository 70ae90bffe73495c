package tools

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

var (
	blue   = domov.RGBA(1, 102, 245, 1)
	orange = domov.RGBA(255, 97, 43, 1)
	white  = domov.RGBA(255, 255, 255, 1)
	cyan   = domov.RGBA(0, 200, 255, 1)
	green  = domov.RGBA(76, 175, 80, 1)
	amber  = domov.RGBA(255, 193, 7, 1)
	black  = domov.RGBA(0, 0, 0, 1)
)

func pin(p orb.Point, fill domov.Color, size float64, shape domov.Shape) domov.Element {
	return domov.NewMarker(domov.CategoryPin, p, domov.Style{
		Fill:         fill,
		Outline:      white,
		OutlineWidth: 2,
		Size:         size,
		Shape:        shape,
	})
}

func collection(d record.Domain, els ...domov.Element) *geojson.FeatureCollection {
	return domov.Set{Domain: d, Elements: els}.FeatureCollection()
}

// nearest returns the record closest to p in planar degrees.
func nearest(recs []record.Record, p orb.Point) (record.Record, error) {
	if len(recs) == 0 {
		return record.Record{}, fmt.Errorf("nearest record: %w", domain.ErrNotFound)
	}
	best, bestDist := recs[0], geo.Distance(recs[0].Point(), p)
	for _, r := range recs[1:] {
		if d := geo.Distance(r.Point(), p); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, nil
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stopMarkers(stops []orb.Point) []domov.Element {
	els := make([]domov.Element, 0, len(stops))
	for _, p := range stops {
		els = append(els, pin(p, blue, 12, domov.ShapeSquare))
	}
	return els
}

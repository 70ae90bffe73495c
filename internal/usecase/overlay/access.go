package overlay

import (
	"math"

	"github.com/paulmach/orb"

	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

var accessServiceRadii = []float64{1.8, 1.1, 0.5}

type accessStrategy struct{}

func (accessStrategy) Domain() record.Domain { return record.DomainAccess }

func (accessStrategy) Build(recs []record.Record, _ score.Filter) domov.Set {
	var els []domov.Element
	var denialSum float64
	var worst record.Record
	worstDenial := math.Inf(-1)
	sites := 0

	for i, r := range recs {
		a := r.Attributes()
		b := score.BucketOf(r, score.Filter{})
		c := ColorFor(record.DomainAccess, b)
		denial := a.NumberOr("denial", 0)
		denialSum += denial
		if denial >= worstDenial {
			worst, worstDenial = r, denial
		}

		for ri, radius := range accessServiceRadii {
			fr := float64(ri)
			dash := domov.DashSolid
			if ri == 0 {
				dash = domov.DashDash
			}
			els = append(els, domov.NewPolygon(domov.CategoryServiceArea, ServiceAreaRing(r.Point(), radius, i+ri), domov.Style{
				Fill:         c.WithAlpha(0.04 + fr*0.02),
				Outline:      c.WithAlpha(0.15 + fr*0.1),
				OutlineWidth: 0.5,
				Dash:         dash,
			}).WithRef(r.ID()))
		}

		if b == score.BucketCritical {
			sites++
			fi := float64(i)
			site := orb.Point{r.Lng() + math.Sin(fi*2.3)*0.6, r.Lat() + math.Cos(fi*1.7)*0.4}
			els = append(els,
				domov.NewMarker(domov.CategoryAllocation, site, domov.Style{
					Fill:         blue,
					Outline:      blue,
					OutlineWidth: 2,
					Size:         14,
					Shape:        domov.ShapeCross,
				}).WithRef(r.ID()).WithContent("Suggested Facility",
					"Location-allocation result",
					"Recommended new site near "+r.Name()+" to improve equity coverage.",
				),
				domov.NewLine(domov.CategoryAllocation, orb.LineString{r.Point(), site}, domov.Style{
					Outline:      blue.WithAlpha(0.5),
					OutlineWidth: 1.5,
					Dash:         domov.DashDot,
				}).WithRef(r.ID()),
			)
		}

		els = append(els, domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
			Fill:         c.WithAlpha(0.85),
			Outline:      white,
			OutlineWidth: 1.5,
			Size:         6 + denial*0.5,
		}).WithRef(r.ID()).WithContent(r.Name(),
			line("Prior Auth Denial Rate", pct(denial)),
			line("Poverty Rate", pct(a.NumberOr("poverty", 0))),
			line("Minority", pct(a.NumberOr("minority", 0))),
			line("Equity Index", a.NumberOr("equity", 0)),
			line("Drive-Time Coverage", commas(score.DriveTimeCoverage(r))+"% within 30 min"),
			line("Geocoded Members", commas(score.GeocodedMembers(r))),
		))
	}

	avg := 0.0
	if len(recs) > 0 {
		avg = denialSum / float64(len(recs))
	}
	set := domov.Set{Elements: els}
	set.Summary = []domov.Stat{
		{Label: "Cities", Value: commas(len(recs))},
		{Label: "Avg Denial Rate", Value: oneDecimal(avg) + "%"},
		{Label: "Worst Equity", Value: worst.Name()},
		{Label: "Allocation Sites", Value: commas(sites)},
		{Label: "Service Areas Computed", Value: commas(set.Count(domov.CategoryServiceArea))},
	}
	return set
}

package overlay

import (
	"strconv"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/cluster"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// DesertClusterThreshold is the planar distance grouping pharmacy deserts.
const DesertClusterThreshold = 3.0

var (
	rxServiceRadii = []float64{1.2, 0.6}
	rxTiers        = []string{"low", "mid", "high"}
)

type rxStrategy struct {
	sites []catalog.Site
}

func (rxStrategy) Domain() record.Domain { return record.DomainRx }

func isDesert(r record.Record) bool { return r.Attributes().Flag("desert") }

func (s rxStrategy) Build(recs []record.Record, _ score.Filter) domov.Set {
	var els []domov.Element

	deserts := cluster.Filter(recs, isDesert)
	clusters := cluster.Greedy(deserts, DesertClusterThreshold, "avg")
	for _, c := range clusters {
		els = append(els, domov.NewPolygon(domov.CategoryCluster, ServiceAreaRing(c.Centroid, 2.0, c.Seed*5+7), domov.Style{
			Fill:         purple.WithAlpha(0.06),
			Outline:      purple.WithAlpha(0.3),
			OutlineWidth: 1.5,
			Dash:         domov.DashDash,
		}).WithRef(c.Members[0].ID()).WithContent("High-Cost Cluster",
			line("Pharmacies in cluster", c.Count()),
			line("Type", "High-High cluster (p<0.05)"),
			line("Avg Copay", money(c.Mean)),
		))
	}

	tierSum := make(map[string]float64)
	tierN := make(map[string]int)
	for i, r := range recs {
		a := r.Attributes()
		tier, _ := a.Text("tier")
		avg := a.NumberOr("avg", 0)
		tierSum[tier] += avg
		tierN[tier]++
		desert := isDesert(r)

		if !desert {
			for ri, radius := range rxServiceRadii {
				fr := float64(ri)
				els = append(els, domov.NewPolygon(domov.CategoryServiceArea, ServiceAreaRing(r.Point(), radius, i*3+ri), domov.Style{
					Fill:         green.WithAlpha(0.03 + fr*0.02),
					Outline:      green.WithAlpha(0.1 + fr*0.08),
					OutlineWidth: 0.4,
				}).WithRef(r.ID()))
			}
		} else {
			els = append(els, domov.NewMarker(domov.CategoryDesert, r.Point(), domov.Style{
				Fill:         purple.WithAlpha(0.1),
				Outline:      purple.WithAlpha(0.3),
				OutlineWidth: 1,
				Size:         40,
			}).WithRef(r.ID()))
		}

		size := 9.0
		desertLabel, cl, drive, audit := "No", "Not significant", "<5 min", "Completed"
		if desert {
			size = 11
			desertLabel, cl, drive, audit = "Yes", "High-High (significant)", "10+ min to nearest alternative", "Scheduled"
		}
		els = append(els, domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
			Fill:         ColorFor(record.DomainRx, score.BucketOf(r, score.Filter{})),
			Outline:      white,
			OutlineWidth: 1.2,
			Size:         size,
		}).WithRef(r.ID()).WithContent(r.Name(),
			line("Pricing Tier", tier),
			line("Avg Copay", money(avg)),
			line("Generic Dispensing Rate", pct(a.NumberOr("generic", 0))),
			line("Pharmacy Desert", desertLabel),
			line("Cluster", cl),
			line("Drive-Time Coverage", drive),
			line("Diabetes Prevalence", strconv.FormatFloat(score.DiabetesPrevalence(r), 'f', 1, 64)+"%"),
			line("Field Audit", audit),
		))
	}

	for _, site := range s.sites {
		els = append(els, domov.NewMarker(domov.CategorySuitability, geo.Point(site.Lat, site.Lng), domov.Style{
			Fill:         blue,
			Outline:      blue,
			OutlineWidth: 2.5,
			Size:         14,
			Shape:        domov.ShapeCross,
		}).WithContent(site.Name,
			"Suitability model result",
			"Weighted overlay of population density, chronic disease prevalence, competitor distance and transit access recommends a new pharmacy partnership here.",
		))
	}

	summary := make([]domov.Stat, 0, len(rxTiers)+3)
	for _, t := range rxTiers {
		v := "n/a"
		if tierN[t] > 0 {
			v = money(tierSum[t] / float64(tierN[t]))
		}
		summary = append(summary, domov.Stat{Label: "Avg Copay (" + t + " tier)", Value: v})
	}
	summary = append(summary,
		domov.Stat{Label: "Pharmacy Deserts", Value: commas(len(deserts))},
		domov.Stat{Label: "Desert Clusters", Value: commas(len(clusters))},
		domov.Stat{Label: "Recommended Sites", Value: commas(len(s.sites))},
	)
	return domov.Set{Elements: els, Summary: summary}
}

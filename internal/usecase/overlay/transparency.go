package overlay

import (
	"strconv"

	"github.com/paulmach/orb"

	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

type transparencyStrategy struct{}

func (transparencyStrategy) Domain() record.Domain { return record.DomainTransparency }

func (transparencyStrategy) Build(recs []record.Record, f score.Filter) domov.Set {
	var els []domov.Element
	var providers, adequacySum float64
	below := 0

	for i, r := range recs {
		a := r.Attributes()
		s := score.Adequacy(r, f)
		c := ColorFor(record.DomainTransparency, score.Classify(record.DomainTransparency, s))
		prov := a.NumberOr("providers", 0)
		providers += prov
		adequacySum += float64(s)

		els = append(els,
			domov.NewPolygon(domov.CategoryCoverage, ServiceAreaRing(r.Point(), 2.5, i*7+3), domov.Style{
				Fill:         c.WithAlpha(0.08),
				Outline:      c.WithAlpha(0.3),
				OutlineWidth: 1,
			}).WithRef(r.ID()),
			domov.NewMarker(domov.CategoryDensity, r.Point(), domov.Style{
				Fill:         clear,
				Outline:      c.WithAlpha(0.4),
				OutlineWidth: 1.5,
				Size:         16 + prov/800,
			}).WithRef(r.ID()),
			domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
				Fill:         c,
				Outline:      white,
				OutlineWidth: 1.5,
				Size:         12,
			}).WithRef(r.ID()).WithContent(r.Name(),
				line("Adequacy Score", strconv.Itoa(s)+"%"),
				line("Providers", commas(int(prov))),
				line("Avg Wait (days)", a.NumberOr("wait", 0)),
				line("Satisfaction", strconv.FormatFloat(a.NumberOr("satisfaction", 0), 'f', 1, 64)+"/5.0"),
				line("Plans", "HMO "+pct(a.NumberOr("hmo", 0))+", PPO "+pct(a.NumberOr("ppo", 0))+
					", EPO "+pct(a.NumberOr("epo", 0))),
				line("Specialty Coverage", "Primary "+pct(a.NumberOr("primary", 0))+
					" | Cardio "+pct(a.NumberOr("cardiology", 0))+
					" | Onco "+pct(a.NumberOr("oncology", 0))+
					" | BH "+pct(a.NumberOr("behavioral", 0))),
			),
		)

		if s < score.AdequacyAlertThreshold {
			below++
			els = append(els, domov.NewMarker(domov.CategoryAlert, orb.Point{r.Lng() + 0.8, r.Lat() + 0.5}, domov.Style{
				Fill:         orange.WithAlpha(0.7),
				Outline:      white,
				OutlineWidth: 1,
				Size:         7,
				Shape:        domov.ShapeSquare,
			}).WithRef(r.ID()).WithContent("Transparency Alert",
				r.Name()+" flagged for transparency report.",
				line("Adequacy", strconv.Itoa(s)+"%, below "+strconv.Itoa(score.AdequacyAlertThreshold)+"% threshold"),
			))
		}
	}

	avg := 0
	if len(recs) > 0 {
		avg = score.Round(adequacySum / float64(len(recs)))
	}
	return domov.Set{
		Elements: els,
		Summary: []domov.Stat{
			{Label: "Regions", Value: commas(len(recs))},
			{Label: "Total Providers", Value: commas(int(providers))},
			{Label: "Avg Adequacy", Value: strconv.Itoa(avg) + "%"},
			{Label: "Below Threshold", Value: commas(below)},
			{Label: "Filter", Value: f.Label()},
		},
	}
}

package overlay

import (
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/cluster"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// FraudLinkThreshold is the planar distance under which two hot spots are linked.
const FraudLinkThreshold = 8.0

var fraudHaloRadii = []float64{2.2, 1.4, 0.7}

type fraudStrategy struct{}

func (fraudStrategy) Domain() record.Domain { return record.DomainFraud }

func (fraudStrategy) Build(recs []record.Record, _ score.Filter) domov.Set {
	var els []domov.Element
	flagged := cluster.Filter(recs, func(r record.Record) bool { return r.Attributes().Flag("flag") })

	for _, r := range flagged {
		for i, radius := range fraudHaloRadii {
			fi := float64(i)
			els = append(els, domov.NewPolygon(domov.CategoryHalo, CircleRing(r.Point(), radius, 36), domov.Style{
				Fill:         red.WithAlpha(0.04 + fi*0.03),
				Outline:      red.WithAlpha(0.12 + fi*0.08),
				OutlineWidth: 0.5,
			}).WithRef(r.ID()))
		}
	}

	links := cluster.Links(flagged, FraudLinkThreshold)
	for _, l := range links {
		els = append(els, domov.NewLine(domov.CategoryLink, lineBetween(l.From, l.To), domov.Style{
			Outline:      red.WithAlpha(0.18),
			OutlineWidth: 1,
			Dash:         domov.DashDash,
		}))
	}

	var claims, scoreSum float64
	for _, r := range recs {
		a := r.Attributes()
		s := score.Anomaly(r)
		flag := a.Flag("flag")
		claims += a.NumberOr("claims", 0)
		scoreSum += float64(s)

		outline, width := grey, 1.0
		hotSpot, kg, field := "Not significant", "none", "Monitoring"
		if flag {
			outline, width = red, 2.5
			hotSpot = "Significant (p<0.01)"
			kg = commas(score.KnowledgeGraphLinks(r)) + " connected entities"
			field = "Investigation assigned"
		}
		els = append(els, domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
			Fill:         ColorFor(record.DomainFraud, score.Classify(record.DomainFraud, s)),
			Outline:      outline,
			OutlineWidth: width,
			Size:         8 + float64(s)/6,
		}).WithRef(r.ID()).WithContent(r.Name(),
			line("Anomaly Score", commas(s)+"/100"),
			line("Claims/1k Beneficiaries", commas(int(a.NumberOr("claims", 0)))),
			line("Avg Diagnosis Codes", a.NumberOr("diag", 0)),
			line("Hot Spot", hotSpot),
			line("Knowledge Graph Links", kg),
			line("Field Status", field),
		))
	}

	avg := 0.0
	if len(recs) > 0 {
		avg = scoreSum / float64(len(recs))
	}
	return domov.Set{
		Elements: els,
		Summary: []domov.Stat{
			{Label: "Counties Analyzed", Value: commas(len(recs))},
			{Label: "Hot Spots", Value: commas(len(flagged))},
			{Label: "Avg Anomaly Score", Value: oneDecimal(avg)},
			{Label: "Knowledge Graph Links", Value: commas(len(links))},
			{Label: "Claims Sampled", Value: commas(int(claims))},
			{Label: "Field Investigations", Value: commas(len(flagged))},
		},
	}
}

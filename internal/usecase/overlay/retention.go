package overlay

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/catalog"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/cluster"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// competitorMinimum is the competitor count from which markers are drawn.
const competitorMinimum = 4

type retentionStrategy struct {
	territories []catalog.Territory
	segments    []string
}

func (retentionStrategy) Domain() record.Domain { return record.DomainRetention }

func (s retentionStrategy) Build(recs []record.Record, _ score.Filter) domov.Set {
	var els []domov.Element

	drawn := 0
	for _, t := range s.territories {
		states := make(map[string]bool, len(t.States))
		for _, st := range t.States {
			states[st] = true
		}
		members := cluster.Filter(recs, func(r record.Record) bool { return states[r.Name()] })
		ring, ok := cluster.Boundary(members)
		if !ok {
			continue
		}
		drawn++
		var churn, total float64
		for _, m := range members {
			churn += m.Attributes().NumberOr("churn", 0)
			total += m.Attributes().NumberOr("members", 0)
		}
		c := domov.RGBA(uint8(t.Color[0]), uint8(t.Color[1]), uint8(t.Color[2]), 1)
		els = append(els, domov.NewPolygon(domov.CategoryBoundary, ring, domov.Style{
			Fill:         c.WithAlpha(0.06),
			Outline:      c.WithAlpha(0.4),
			OutlineWidth: 1.5,
			Dash:         domov.DashDash,
		}).WithContent(t.Name,
			line("States", len(t.States)),
			line("Avg Churn", oneDecimal(churn/float64(len(members)))+"%"),
			line("Members", commas(int(total))),
		))
	}

	var totalMembers, churnSum float64
	atRisk := 0
	for i, r := range recs {
		a := r.Attributes()
		members := a.NumberOr("members", 0)
		churn := a.NumberOr("churn", 0)
		competitors := int(a.NumberOr("competitors", 0))
		totalMembers += members
		churnSum += churn

		prediction := "Stable"
		if score.ChurnAtRisk(r) {
			atRisk++
			prediction = "High risk, intervention recommended"
		}
		segment := ""
		if len(s.segments) > 0 {
			segment = s.segments[i%len(s.segments)]
		}
		els = append(els, domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
			Fill:         ColorFor(record.DomainRetention, score.BucketOf(r, score.Filter{})),
			Outline:      white,
			OutlineWidth: 1,
			Size:         10 + math.Sqrt(members/60000),
		}).WithRef(r.ID()).WithContent(r.Name(),
			line("Members", commas(int(members))),
			line("Churn Rate", pct(churn)),
			line("Competitors", competitors),
			line("Tapestry Segment", segment),
			line("Median Income", "$"+commas(score.MedianIncome(r))),
			line("Suitability Score", strconv.Itoa(score.Suitability(r))+"/100"),
			line("Churn Prediction", prediction),
		))

		if competitors >= competitorMinimum {
			n := competitors
			if n > 5 {
				n = 5
			}
			for c := 0; c < n; c++ {
				angle := 2 * math.Pi * float64(c) / float64(competitors)
				p := orb.Point{r.Lng() + math.Cos(angle)*0.8, r.Lat() + math.Sin(angle)*0.5}
				els = append(els, domov.NewMarker(domov.CategoryCompetitor, p, domov.Style{
					Fill:         navy.WithAlpha(0.45),
					Outline:      navy,
					OutlineWidth: 0.8,
					Size:         7,
					Shape:        domov.ShapeTriangle,
				}).WithRef(r.ID()))
			}
		}
	}

	avgChurn := 0.0
	if len(recs) > 0 {
		avgChurn = churnSum / float64(len(recs))
	}
	return domov.Set{
		Elements: els,
		Summary: []domov.Stat{
			{Label: "Total Members", Value: oneDecimal(totalMembers/1e6) + "M"},
			{Label: "Avg Churn", Value: oneDecimal(avgChurn) + "%"},
			{Label: "At-Risk States", Value: commas(atRisk)},
			{Label: "Territories", Value: commas(drawn)},
		},
	}
}

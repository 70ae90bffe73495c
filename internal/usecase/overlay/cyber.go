package overlay

import (
	"math"

	"github.com/kailas-cloud/geolens/internal/catalog"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

var (
	cyberBlastRadii = []float64{3.0, 1.8}
	cyberShapes     = map[string]domov.Shape{
		"datacenter": domov.ShapeSquare,
		"claims":     domov.ShapeDiamond,
		"node":       domov.ShapeCircle,
	}
	cyberSizes = map[string]float64{"datacenter": 16, "claims": 13, "node": 10}
)

type cyberStrategy struct {
	links []catalog.Link
}

func (cyberStrategy) Domain() record.Domain { return record.DomainCyber }

func (s cyberStrategy) Build(recs []record.Record, _ score.Filter) domov.Set {
	var els []domov.Element
	severe := func(r record.Record) bool {
		b := score.BucketOf(r, score.Filter{})
		return b == score.BucketCritical || b == score.BucketHigh
	}

	highRisk := 0
	for _, r := range recs {
		if !severe(r) {
			continue
		}
		highRisk++
		c := ColorFor(record.DomainCyber, score.BucketOf(r, score.Filter{}))
		for ri, radius := range cyberBlastRadii {
			fr := float64(ri)
			els = append(els, domov.NewPolygon(domov.CategoryBlast, CircleRing(r.Point(), radius, 30), domov.Style{
				Fill:         c.WithAlpha(0.04 + fr*0.03),
				Outline:      c.WithAlpha(0.15 + fr*0.1),
				OutlineWidth: 0.5,
				Dash:         domov.DashDash,
			}).WithRef(r.ID()))
		}
	}

	upstream := make(map[int]int)
	downstream := make(map[int]int)
	cascade := 0
	for _, l := range s.links {
		if l.From >= len(recs) || l.To >= len(recs) {
			continue
		}
		from, to := recs[l.From], recs[l.To]
		downstream[l.From]++
		upstream[l.To]++
		if score.BucketOf(from, score.Filter{}) == score.BucketCritical {
			cascade++
		}

		atRisk := severe(from) || severe(to)
		backbone := facilityType(from) == "datacenter" && facilityType(to) == "datacenter"
		st := domov.Style{Outline: skyBlue.WithAlpha(0.3), OutlineWidth: 1, Dash: domov.DashSolid}
		switch {
		case atRisk:
			st = domov.Style{Outline: orange.WithAlpha(0.7), OutlineWidth: 2, Dash: domov.DashDash}
		case backbone:
			st.Outline = cyan.WithAlpha(0.6)
		}
		if backbone {
			st.OutlineWidth = 2.5
		}
		kind, status := "API dependency", "Healthy"
		if backbone {
			kind = "Primary backbone (fiber)"
		}
		if atRisk {
			status = "At risk"
		}
		els = append(els, domov.NewLine(domov.CategoryTrace, lineBetween(from, to), st).
			WithContent("Network Trace",
				line("From", from.Name()),
				line("To", to.Name()),
				line("Type", kind),
				line("Status", status),
				line("Latency", commas(traceLatency(l))+"ms"),
			))
	}

	compromised, alerts := 0, 0
	for i, r := range recs {
		a := r.Attributes()
		typ := facilityType(r)
		status, _ := a.Text("status")
		risk, _ := a.Text("risk")
		tier := a.NumberOr("tier", 0)
		alerts += score.Alerts24h(r)

		outline, width := dark, 1.5
		if status == "compromised" {
			compromised++
			outline, width = red, 3
		}
		shape, ok := cyberShapes[typ]
		if !ok {
			shape = domov.ShapeCircle
		}
		size, ok := cyberSizes[typ]
		if !ok {
			size = 10
		}
		survey := "Last 30 days"
		if status == "compromised" {
			survey = "Pending field review"
		}
		els = append(els, domov.NewMarker(domov.CategoryMarker, r.Point(), domov.Style{
			Fill:         ColorFor(record.DomainCyber, score.BucketOf(r, score.Filter{})),
			Outline:      outline,
			OutlineWidth: width,
			Size:         size,
			Shape:        shape,
		}).WithRef(r.ID()).WithContent(r.Name(),
			line("Type", typ),
			line("Tier", tier),
			line("Risk Level", risk),
			line("Status", status),
			line("Upstream Dependencies", upstream[i]),
			line("Downstream Services", downstream[i]),
			line("Alerts (24h)", score.Alerts24h(r)),
			line("Field Assessment", survey),
		))

		if status == "compromised" || status == "degraded" {
			ring := amber.WithAlpha(0.5)
			if status == "compromised" {
				ring = red.WithAlpha(0.6)
			}
			els = append(els, domov.NewMarker(domov.CategoryPulse, r.Point(), domov.Style{
				Fill:         clear,
				Outline:      ring,
				OutlineWidth: 2.5,
				Size:         28,
			}).WithRef(r.ID()))
		}
	}

	return domov.Set{
		Elements: els,
		Summary: []domov.Stat{
			{Label: "Facilities Mapped", Value: commas(len(recs))},
			{Label: "Compromised", Value: commas(compromised)},
			{Label: "High/Critical Risk", Value: commas(highRisk)},
			{Label: "Network Traces", Value: commas(len(s.links))},
			{Label: "Cascade Downstream", Value: commas(cascade) + " services"},
			{Label: "Alerts (24h)", Value: commas(alerts)},
		},
	}
}

func facilityType(r record.Record) string {
	t, _ := r.Attributes().Text("type")
	return t
}

// traceLatency is a stable 5..45 ms figure per link.
func traceLatency(l catalog.Link) int {
	h := math.Abs(math.Sin(float64(l.From)*12.9898+float64(l.To)*78.233) * 43758.5453)
	return 5 + score.Round((h-math.Floor(h))*40)
}

package score

import (
	"math"

	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Max is the upper score bound; Min is 0.
const Max = 100

// AdequacyAlertThreshold marks regions that need network outreach.
const AdequacyAlertThreshold = 70

var levelScores = map[string]float64{
	"critical": 100,
	"high":     75,
	"medium":   50,
	"mid":      50,
	"low":      25,
}

// Score returns the primary score of a record for its domain.
func Score(r record.Record, f Filter) int {
	switch r.Domain() {
	case record.DomainFraud:
		return Anomaly(r)
	case record.DomainAccess:
		return Equity(r)
	case record.DomainCyber:
		return Risk(r)
	case record.DomainRetention:
		return ChurnPressure(r)
	case record.DomainTransparency:
		return Adequacy(r, f)
	case record.DomainRx:
		return Burden(r)
	}
	return 0
}

// BucketOf classifies the primary score of a record.
// Retention is classified on the raw churn rate.
func BucketOf(r record.Record, f Filter) Bucket {
	if r.Domain() == record.DomainRetention {
		if v, ok := r.Attributes().Number("churn"); ok {
			return classify(record.DomainRetention, v*10)
		}
	}
	return Classify(r.Domain(), Score(r, f))
}

// Anomaly is the fraud anomaly score.
func Anomaly(r record.Record) int {
	v, ok := r.Attributes().Number("score")
	if !ok {
		return 0
	}
	return bound(v)
}

// Equity is the access equity index scaled to 0..100.
func Equity(r record.Record) int {
	v, ok := r.Attributes().Number("equity")
	if !ok {
		return 0
	}
	return bound(v * 100)
}

// Risk is the cyber facility risk level score.
func Risk(r record.Record) int {
	lvl, _ := r.Attributes().Text("risk")
	return bound(levelScores[lvl])
}

// ChurnPressure is the retention churn rate scaled to 0..100.
func ChurnPressure(r record.Record) int {
	v, ok := r.Attributes().Number("churn")
	if !ok {
		return 0
	}
	return bound(v * 10)
}

// Suitability is the retention marketing suitability, capped at 95.
func Suitability(r record.Record) int {
	a := r.Attributes()
	churn, ok1 := a.Number("churn")
	members, ok2 := a.Number("members")
	if !ok1 || !ok2 {
		return 0
	}
	s := Round(100 - churn*8 + members/200000)
	if s > 95 {
		s = 95
	}
	return clamp(s)
}

// Burden is the rx pharmacy cost burden. Deserts score highest.
func Burden(r record.Record) int {
	a := r.Attributes()
	if a.Flag("desert") {
		return Max
	}
	tier, _ := a.Text("tier")
	return bound(levelScores[tier])
}

// Adequacy blends the plan sub-metrics and the specialty sub-metrics.
// Missing sub-metrics are skipped; with nothing present the score is 0.
func Adequacy(r record.Record, f Filter) int {
	a := r.Attributes()
	var parts []float64
	if v, ok := blend(a, f.planKeys()); ok {
		parts = append(parts, v)
	}
	if v, ok := blend(a, f.specialtyKeys()); ok {
		parts = append(parts, v)
	}
	m, ok := mean(parts)
	if !ok {
		return 0
	}
	return bound(m)
}

func blend(a record.Attributes, keys []string) (float64, bool) {
	vals := make([]float64, 0, len(keys))
	for _, k := range keys {
		if v, ok := a.Number(k); ok {
			vals = append(vals, v)
		}
	}
	return mean(vals)
}

func mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// Round rounds half up, matching the display rounding of the dashboards.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func bound(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return clamp(Round(x))
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > Max {
		return Max
	}
	return s
}

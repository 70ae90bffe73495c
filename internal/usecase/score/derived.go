package score

import (
	"math"

	"github.com/kailas-cloud/geolens/internal/domain/record"
)

var alertsByRisk = map[string]int{"critical": 47, "high": 12, "medium": 3, "low": 0}

// KnowledgeGraphLinks is the number of connected entities shown for a fraud county.
func KnowledgeGraphLinks(r record.Record) int {
	return Anomaly(r) / 12
}

// DriveTimeCoverage is the percent of an access city within drive time of care.
func DriveTimeCoverage(r record.Record) int {
	return Round(82 - r.Attributes().NumberOr("denial", 0)*0.8)
}

// GeocodedMembers is the member count geocoded for an access city.
func GeocodedMembers(r record.Record) int {
	return Round(r.Attributes().NumberOr("denial", 0) * 4200)
}

// Alerts24h is the cyber alert volume for a facility's risk level.
func Alerts24h(r record.Record) int {
	lvl, _ := r.Attributes().Text("risk")
	return alertsByRisk[lvl]
}

// MedianIncome is the enrichment median household income for a retention state.
func MedianIncome(r record.Record) int {
	return 38000 + Round(r.Attributes().NumberOr("members", 0)/80)
}

// ChurnAtRisk marks retention states with churn of 8% or more.
func ChurnAtRisk(r record.Record) bool {
	return r.Attributes().NumberOr("churn", 0) >= 8
}

// DiabetesPrevalence is the enrichment diabetes rate near a pharmacy, one decimal.
func DiabetesPrevalence(r record.Record) float64 {
	v := 8 + r.Attributes().NumberOr("avg", 0)*0.3
	return math.Round(v*10) / 10
}

package enrichment

import (
	"math"

	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

type seedSource int

const (
	primarySeed seedSource = iota
	secondarySeed
)

type rounding int

const (
	roundInt rounding = iota
	roundTenth
	roundNone
)

// simField derives one value as min + seed*span, optionally scaled by an
// already simulated base field.
type simField struct {
	name  string
	min   float64
	span  float64
	seed  seedSource
	round rounding
	of    string
}

var equitySim = []simField{
	{name: "TOTPOP", min: 8000, span: 85000, seed: primarySeed},
	{name: "TOTHH", min: 0.35, span: 0.15, seed: secondarySeed, of: "TOTPOP"},
	{name: "MEDHINC_CY", min: 28000, span: 72000, seed: primarySeed},
	{name: "PCI_CY", min: 14000, span: 42000, seed: secondarySeed},
	{name: "MEDAGE_CY", min: 28, span: 18, seed: primarySeed},
	{name: "UNEMP_CY", min: 3, span: 12, seed: secondarySeed, round: roundTenth},
	{name: "UNINSUREDRATE", min: 4, span: 22, seed: primarySeed, round: roundTenth},
	{name: "MINORITYCY", min: 0.1, span: 0.7, seed: secondarySeed, of: "TOTPOP"},
	{name: "POVERTY", min: 6, span: 26, seed: primarySeed, round: roundTenth},
	{name: "GINI", min: 0.35, span: 0.18, seed: secondarySeed, round: roundNone},
	{name: "MENTAL", min: 10, span: 18, seed: primarySeed, round: roundTenth},
	{name: "FAIRPOOR", min: 8, span: 20, seed: secondarySeed, round: roundTenth},
	{name: "DISABILITY", min: 8, span: 16, seed: primarySeed, round: roundTenth},
	{name: "NOPRIMDR", min: 12, span: 25, seed: secondarySeed, round: roundTenth},
}

var marketSim = []simField{
	{name: "TOTPOP_CY", min: 8000, span: 85000, seed: primarySeed},
	{name: "TOTHH_CY", min: 0.35, span: 0.15, seed: secondarySeed, of: "TOTPOP_CY"},
	{name: "MEDHINC_CY", min: 28000, span: 72000, seed: primarySeed},
	{name: "AVGHINC_CY", min: 1.2, span: 0.3, seed: secondarySeed, of: "MEDHINC_CY"},
}

// Seeds returns the two deterministic pseudo-random values in [0,1) for a point.
func Seeds(lat, lng float64) (float64, float64) {
	return frac(math.Sin(lat*12.9898+lng*78.233) * 43758.5453),
		frac(math.Sin(lat*78.233+lng*12.9898) * 23421.631)
}

func frac(v float64) float64 {
	v = math.Abs(v)
	return v - math.Floor(v)
}

// Simulate synthesizes a plausible result for the point. Identical inputs
// give identical values; nothing is random.
func Simulate(d record.Domain, lat, lng float64, segments []string) domen.Result {
	seed, s2 := Seeds(lat, lng)
	schema := domen.SchemaFor(d)

	table := equitySim
	if schema == domen.SchemaMarket {
		table = marketSim
	}

	numbers := make(map[string]float64, len(table))
	for _, f := range table {
		s := seed
		if f.seed == secondarySeed {
			s = s2
		}
		v := f.min + s*f.span
		if f.of != "" {
			v = numbers[f.of] * v
		}
		numbers[f.name] = applyRounding(v, f.round)
	}

	var texts map[string]string
	if schema == domen.SchemaMarket {
		texts = map[string]string{"TAPSEGNAM": segmentFor(s2, segments)}
	}

	res, err := domen.NewResult(domen.ProvenanceSimulated, d, lat, lng, numbers, texts)
	if err != nil {
		// the tables above cover every schema field
		panic(err)
	}
	return res
}

func segmentFor(s2 float64, segments []string) string {
	if len(segments) == 0 {
		return "N/A"
	}
	i := int(math.Floor(s2 * float64(len(segments))))
	if i >= len(segments) {
		i = len(segments) - 1
	}
	return segments[i]
}

func applyRounding(v float64, r rounding) float64 {
	switch r {
	case roundInt:
		return roundHalfUp(v)
	case roundTenth:
		return roundHalfUp(v*10) / 10
	default:
		return v
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

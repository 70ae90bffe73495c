package enrichment

import (
	"math"

	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// normalize maps raw backend attributes onto the canonical schema. Fields the
// backend did not return stay absent and make NewResult fail.
func normalize(d record.Domain, lat, lng float64, attrs map[string]any) (domen.Result, error) {
	if domen.SchemaFor(d) == domen.SchemaMarket {
		return normalizeMarket(d, lat, lng, attrs)
	}
	return normalizeEquity(d, lat, lng, attrs)
}

func normalizeEquity(d record.Domain, lat, lng float64, attrs map[string]any) (domen.Result, error) {
	out := make(map[string]float64)
	copyAs := func(name string, keys ...string) {
		if v, ok := firstNumber(attrs, keys...); ok {
			out[name] = v
		}
	}

	copyAs("TOTPOP", "TOTPOP", "TOTPOP_CY")
	copyAs("TOTHH", "TOTHH", "TOTHH_CY")
	for _, k := range []string{"MEDHINC_CY", "PCI_CY", "MEDAGE_CY", "UNEMP_CY"} {
		copyAs(k, k)
	}
	copyAs("UNINSUREDRATE", "UNINSUREDRATE_CY", "HLTH_NOHEALTHINS18_64")

	if div, ok := number(attrs, "DIVINDX_CY"); ok && div != 0 {
		out["GINI"] = div / 100
		if pop, ok := out["TOTPOP"]; ok {
			out["MINORITYCY"] = roundHalfUp(div / 100 * pop)
		}
	}
	if inc, ok := number(attrs, "MEDHINC_CY"); ok && inc != 0 {
		out["POVERTY"] = math.Max(0, 30-inc/3000)
	}

	copyAs("MENTAL", "HLTH_MENTAL14D_CRD")
	copyAs("FAIRPOOR", "HLTH_FHLTH_CRD")
	copyAs("DISABILITY", "HLTH_DISAB_TOT")
	copyAs("NOPRIMDR", "HLTH_NOUSUAL_SRC")

	return domen.NewResult(domen.ProvenanceLive, d, lat, lng, out, nil)
}

func normalizeMarket(d record.Domain, lat, lng float64, attrs map[string]any) (domen.Result, error) {
	out := make(map[string]float64)
	for _, k := range []string{"TOTPOP_CY", "TOTHH_CY", "MEDHINC_CY", "AVGHINC_CY"} {
		if v, ok := number(attrs, k); ok {
			out[k] = v
		}
	}
	segment := "N/A"
	if s, ok := attrs["TAPSEGNAM"].(string); ok && s != "" {
		segment = s
	}
	return domen.NewResult(domen.ProvenanceLive, d, lat, lng, out, map[string]string{"TAPSEGNAM": segment})
}

func number(attrs map[string]any, key string) (float64, bool) {
	switch v := attrs[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstNumber(attrs map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := number(attrs, k); ok {
			return v, true
		}
	}
	return 0, false
}

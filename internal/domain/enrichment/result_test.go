package enrichment

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

func TestSchemaFor(t *testing.T) {
	for _, d := range record.All() {
		want := SchemaEquity
		if d == record.DomainRetention {
			want = SchemaMarket
		}
		if got := SchemaFor(d); got != want {
			t.Errorf("SchemaFor(%s) = %s, want %s", d, got, want)
		}
	}
	if n := len(SchemaEquity.Fields()); n != 14 {
		t.Errorf("equity fields = %d", n)
	}
	if n := len(SchemaMarket.Variables()); n != 5 {
		t.Errorf("market variables = %d", n)
	}
}

func TestNewResult_MissingField(t *testing.T) {
	_, err := NewResult(ProvenanceLive, record.DomainRetention, 40, -74,
		map[string]float64{"TOTPOP_CY": 1, "TOTHH_CY": 1, "MEDHINC_CY": 1, "AVGHINC_CY": 1}, nil)
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestNewResult_DropsExtraFields(t *testing.T) {
	r, err := NewResult(ProvenanceLive, record.DomainRetention, 40, -74,
		map[string]float64{"TOTPOP_CY": 1, "TOTHH_CY": 2, "MEDHINC_CY": 3, "AVGHINC_CY": 4, "EXTRA": 5},
		map[string]string{"TAPSEGNAM": "Metro Renters"})
	if err != nil {
		t.Fatal(err)
	}
	keys := r.Keys()
	want := []string{"AVGHINC_CY", "MEDHINC_CY", "TAPSEGNAM", "TOTHH_CY", "TOTPOP_CY"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if s, _ := r.Text("TAPSEGNAM"); s != "Metro Renters" {
		t.Errorf("TAPSEGNAM = %q", s)
	}
}

func TestResult_JSON(t *testing.T) {
	r, err := NewResult(ProvenanceSimulated, record.DomainRetention, 40, -74,
		map[string]float64{"TOTPOP_CY": 1, "TOTHH_CY": 2, "MEDHINC_CY": 3, "AVGHINC_CY": 4},
		map[string]string{"TAPSEGNAM": "College Towns"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(r.WithReason("unauthenticated"))
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Provenance string         `json:"provenance"`
		Reason     string         `json:"reason"`
		Schema     string         `json:"schema"`
		Values     map[string]any `json:"values"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Provenance != "simulated" || got.Reason != "unauthenticated" || got.Schema != "market" {
		t.Errorf("decoded = %+v", got)
	}
	if got.Values["TAPSEGNAM"] != "College Towns" || got.Values["AVGHINC_CY"] != float64(4) {
		t.Errorf("values = %v", got.Values)
	}
}

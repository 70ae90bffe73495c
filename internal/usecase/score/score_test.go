package score

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

func rec(t *testing.T, d record.Domain, attrs map[string]any) record.Record {
	t.Helper()
	a, err := record.NewAttributes(attrs)
	if err != nil {
		t.Fatal(err)
	}
	r, err := record.New("r1", d, "R1", 10, 10, a)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFraudBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  Bucket
	}{
		{94, BucketCritical},
		{80, BucketCritical},
		{79, BucketHigh},
		{60, BucketHigh},
		{55, BucketModerate},
		{40, BucketModerate},
		{30, BucketLow},
	}
	for _, tc := range tests {
		r := rec(t, record.DomainFraud, map[string]any{"score": tc.score})
		if got := BucketOf(r, Filter{}); got != tc.want {
			t.Errorf("score %v: got %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestAccessBuckets(t *testing.T) {
	tests := []struct {
		equity float64
		want   Bucket
	}{
		{0.27, BucketCritical},
		{0.34, BucketCritical},
		{0.35, BucketHigh},
		{0.49, BucketHigh},
		{0.50, BucketLow},
		{0.65, BucketLow},
	}
	for _, tc := range tests {
		r := rec(t, record.DomainAccess, map[string]any{"equity": tc.equity})
		if got := BucketOf(r, Filter{}); got != tc.want {
			t.Errorf("equity %v: got %s, want %s", tc.equity, got, tc.want)
		}
	}
}

func TestCyberRisk(t *testing.T) {
	tests := []struct {
		risk  string
		score int
		want  Bucket
	}{
		{"critical", 100, BucketCritical},
		{"high", 75, BucketHigh},
		{"medium", 50, BucketModerate},
		{"low", 25, BucketLow},
		{"unknown", 0, BucketLow},
	}
	for _, tc := range tests {
		r := rec(t, record.DomainCyber, map[string]any{"risk": tc.risk})
		if got := Risk(r); got != tc.score {
			t.Errorf("%s: risk %d, want %d", tc.risk, got, tc.score)
		}
		if got := BucketOf(r, Filter{}); got != tc.want {
			t.Errorf("%s: bucket %s, want %s", tc.risk, got, tc.want)
		}
	}
}

func TestRetention(t *testing.T) {
	ca := rec(t, record.DomainRetention, map[string]any{"members": 4200000, "churn": 9.1, "competitors": 6})
	if got := BucketOf(ca, Filter{}); got != BucketCritical {
		t.Errorf("CA churn bucket = %s", got)
	}
	// 100 - 72.8 + 21 = 48.2
	if got := Suitability(ca); got != 48 {
		t.Errorf("CA suitability = %d, want 48", got)
	}
	wy := rec(t, record.DomainRetention, map[string]any{"members": 42000, "churn": 4.3})
	// 100 - 34.4 + 0.21 = 65.81
	if got := Suitability(wy); got != 66 {
		t.Errorf("WY suitability = %d, want 66", got)
	}
	capped := rec(t, record.DomainRetention, map[string]any{"members": 2000000, "churn": 0.5})
	if got := Suitability(capped); got != 95 {
		t.Errorf("suitability cap = %d, want 95", got)
	}
	md := rec(t, record.DomainRetention, map[string]any{"churn": 7.5})
	if got := BucketOf(md, Filter{}); got != BucketHigh {
		t.Errorf("churn 7.5 bucket = %s, want high", got)
	}
}

func TestRetentionBucket_UnroundedChurn(t *testing.T) {
	tests := []struct {
		churn float64
		want  Bucket
	}{
		{8.95, BucketHigh},
		{9.0, BucketCritical},
		{7.45, BucketModerate},
		{5.96, BucketLow},
	}
	for _, tt := range tests {
		r := rec(t, record.DomainRetention, map[string]any{"churn": tt.churn})
		if got := BucketOf(r, Filter{}); got != tt.want {
			t.Errorf("churn %v bucket = %s, want %s", tt.churn, got, tt.want)
		}
	}
	// The displayed score still rounds.
	r := rec(t, record.DomainRetention, map[string]any{"churn": 8.95})
	if got := ChurnPressure(r); got != 90 {
		t.Errorf("ChurnPressure(8.95) = %d, want 90", got)
	}
}

func TestAdequacy_GreatLakesPrimary(t *testing.T) {
	r := rec(t, record.DomainTransparency, map[string]any{
		"hmo": 80, "ppo": 90, "epo": 76,
		"primary": 82, "cardiology": 70, "oncology": 60, "behavioral": 50,
	})
	f := Filter{Plan: PlanAll, Specialty: SpecialtyPrimary}
	if got := Adequacy(r, f); got != 82 {
		t.Fatalf("adequacy = %d, want 82", got)
	}
	if got := Classify(record.DomainTransparency, 82); got != BucketModerate {
		t.Errorf("bucket = %s, want moderate", got)
	}
}

func TestAdequacy_MissingSubMetrics(t *testing.T) {
	r := rec(t, record.DomainTransparency, map[string]any{"hmo": 90, "primary": 70})
	// plan mean over present keys only = 90, specialty = 70
	if got := Adequacy(r, Filter{}); got != 80 {
		t.Errorf("adequacy = %d, want 80", got)
	}
	onlyPlan := rec(t, record.DomainTransparency, map[string]any{"ppo": 66})
	if got := Adequacy(onlyPlan, Filter{}); got != 66 {
		t.Errorf("adequacy = %d, want 66", got)
	}
	empty := rec(t, record.DomainTransparency, nil)
	if got := Adequacy(empty, Filter{}); got != 0 {
		t.Errorf("adequacy = %d, want 0", got)
	}
}

func TestAdequacy_UnknownFilterTreatedAsAll(t *testing.T) {
	r := rec(t, record.DomainTransparency, map[string]any{"hmo": 80, "ppo": 90, "epo": 76, "primary": 82})
	a := Adequacy(r, Filter{Plan: "gold", Specialty: "dental"})
	b := Adequacy(r, Filter{})
	if a != b {
		t.Fatalf("unknown filter %d != all %d", a, b)
	}
}

func TestRx(t *testing.T) {
	desert := rec(t, record.DomainRx, map[string]any{"tier": "high", "avg": 24.8, "desert": true})
	if BucketOf(desert, Filter{}) != BucketCritical {
		t.Error("desert must be critical")
	}
	mid := rec(t, record.DomainRx, map[string]any{"tier": "mid", "avg": 18.2})
	if BucketOf(mid, Filter{}) != BucketModerate {
		t.Error("mid tier must be moderate")
	}
	if got := DiabetesPrevalence(mid); got != 13.5 {
		t.Errorf("diabetes = %v, want 13.5", got)
	}
}

func TestDerived(t *testing.T) {
	miami := rec(t, record.DomainFraud, map[string]any{"score": 94})
	if got := KnowledgeGraphLinks(miami); got != 7 {
		t.Errorf("kg links = %d, want 7", got)
	}
	detroit := rec(t, record.DomainAccess, map[string]any{"denial": 24.3})
	if got := DriveTimeCoverage(detroit); got != 63 {
		t.Errorf("coverage = %d, want 63", got)
	}
	if got := GeocodedMembers(detroit); got != 102060 {
		t.Errorf("members = %d, want 102060", got)
	}
	al := rec(t, record.DomainRetention, map[string]any{"members": 420000, "churn": 8.2})
	if got := MedianIncome(al); got != 43250 {
		t.Errorf("income = %d, want 43250", got)
	}
	if !ChurnAtRisk(al) {
		t.Error("AL must be at risk")
	}
}

func TestScoresBoundedOverCatalog(t *testing.T) {
	c := catalog.MustLoadEmbedded()
	filters := []Filter{{}}
	for _, p := range []Plan{PlanAll, PlanHMO, PlanPPO, PlanEPO} {
		for _, s := range []Specialty{
			SpecialtyAll, SpecialtyPrimary, SpecialtyCardiology, SpecialtyOncology, SpecialtyBehavioral,
		} {
			filters = append(filters, Filter{Plan: p, Specialty: s})
		}
	}
	for _, d := range record.All() {
		for _, r := range c.Records(d) {
			for _, f := range filters {
				s := Score(r, f)
				if s < 0 || s > Max {
					t.Fatalf("%s/%s %+v: score %d out of bounds", d, r.ID(), f, s)
				}
			}
			if d == record.DomainRetention {
				if s := Suitability(r); s < 0 || s > 95 {
					t.Fatalf("%s suitability %d out of bounds", r.ID(), s)
				}
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("", "")
	if err != nil || f.Plan != PlanAll || f.Specialty != SpecialtyAll {
		t.Fatalf("defaults: %+v %v", f, err)
	}
	f, err = ParseFilter("HMO", "Oncology")
	if err != nil || f.Plan != PlanHMO || f.Specialty != SpecialtyOncology {
		t.Fatalf("parse: %+v %v", f, err)
	}
	if f.Label() != "HMO / Oncology" {
		t.Errorf("label = %q", f.Label())
	}
	if _, err := ParseFilter("gold", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("plan: expected ErrInvalidInput, got %v", err)
	}
	if _, err := ParseFilter("", "dental"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("specialty: expected ErrInvalidInput, got %v", err)
	}
	if (Filter{}).Label() != "All Plans / All Specialties" {
		t.Errorf("zero label = %q", (Filter{}).Label())
	}
}

func TestRound_HalfUp(t *testing.T) {
	if Round(2.5) != 3 || Round(-0.5) != 0 || Round(81.49) != 81 {
		t.Fatal("half-up rounding broken")
	}
}

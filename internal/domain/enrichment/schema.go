package enrichment

import (
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// Schema names the canonical field set returned for a domain.
type Schema string

const (
	// SchemaEquity is the health-equity demographic profile.
	SchemaEquity Schema = "equity"
	// SchemaMarket is the member-market profile used for retention.
	SchemaMarket Schema = "market"
)

// FieldKind says whether a field carries a number or a label.
type FieldKind int

const (
	KindNumber FieldKind = iota
	KindText
)

// Field is one canonical output field of a schema.
type Field struct {
	Name string
	Kind FieldKind
}

var equityFields = []Field{
	{"TOTPOP", KindNumber},
	{"TOTHH", KindNumber},
	{"MEDHINC_CY", KindNumber},
	{"PCI_CY", KindNumber},
	{"MEDAGE_CY", KindNumber},
	{"UNEMP_CY", KindNumber},
	{"UNINSUREDRATE", KindNumber},
	{"MINORITYCY", KindNumber},
	{"POVERTY", KindNumber},
	{"GINI", KindNumber},
	{"MENTAL", KindNumber},
	{"FAIRPOOR", KindNumber},
	{"DISABILITY", KindNumber},
	{"NOPRIMDR", KindNumber},
}

var marketFields = []Field{
	{"TOTPOP_CY", KindNumber},
	{"TOTHH_CY", KindNumber},
	{"MEDHINC_CY", KindNumber},
	{"AVGHINC_CY", KindNumber},
	{"TAPSEGNAM", KindText},
}

// Analysis variables requested from the live backend per schema.
var (
	equityVariables = []string{
		"KeyGlobalFacts.TOTPOP", "KeyGlobalFacts.TOTHH",
		"KeyUSFacts.MEDHINC_CY", "KeyUSFacts.PCI_CY", "KeyUSFacts.MEDAGE_CY",
		"Policy.UNEMP_CY",
		"Health.HLTH_NOHEALTHINS18_64", "Health.HLTH_MENTAL14D_CRD", "Health.HLTH_FHLTH_CRD",
		"Health.HLTH_DISAB_TOT", "Health.HLTH_NOUSUAL_SRC",
		"KeyUSFacts.DIVINDX_CY",
		"AtRisk.UNINSUREDRATE_CY",
	}
	marketVariables = []string{
		"AtRisk.TOTPOP_CY", "AtRisk.MEDHINC_CY", "AtRisk.AVGHINC_CY",
		"AtRisk.TOTHH_CY", "tapestry.TAPSEGNAM",
	}
)

// SchemaFor returns the schema served for a domain. Retention gets the
// market profile, every other domain the equity profile.
func SchemaFor(d record.Domain) Schema {
	if d == record.DomainRetention {
		return SchemaMarket
	}
	return SchemaEquity
}

// Fields returns the canonical fields in display order.
func (s Schema) Fields() []Field {
	switch s {
	case SchemaMarket:
		return append([]Field(nil), marketFields...)
	default:
		return append([]Field(nil), equityFields...)
	}
}

// Variables returns the backend analysis variables for the schema.
func (s Schema) Variables() []string {
	switch s {
	case SchemaMarket:
		return append([]string(nil), marketVariables...)
	default:
		return append([]string(nil), equityVariables...)
	}
}

func (s Schema) String() string { return string(s) }

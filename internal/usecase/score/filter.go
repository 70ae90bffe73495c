package score

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/geolens/internal/domain"
)

// Plan narrows transparency adequacy to one plan type.
type Plan string

const (
	PlanAll Plan = "all"
	PlanHMO Plan = "hmo"
	PlanPPO Plan = "ppo"
	PlanEPO Plan = "epo"
)

// Specialty narrows transparency adequacy to one specialty.
type Specialty string

const (
	SpecialtyAll        Specialty = "all"
	SpecialtyPrimary    Specialty = "primary"
	SpecialtyCardiology Specialty = "cardiology"
	SpecialtyOncology   Specialty = "oncology"
	SpecialtyBehavioral Specialty = "behavioral"
)

var (
	planKeys      = []string{string(PlanHMO), string(PlanPPO), string(PlanEPO)}
	specialtyKeys = []string{
		string(SpecialtyPrimary), string(SpecialtyCardiology),
		string(SpecialtyOncology), string(SpecialtyBehavioral),
	}
)

// ParsePlan accepts "", "all", "hmo", "ppo", "epo" (case-insensitive).
func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return PlanAll, nil
	case PlanAll, PlanHMO, PlanPPO, PlanEPO:
		return p, nil
	}
	return "", fmt.Errorf("unknown plan %q: %w", s, domain.ErrInvalidInput)
}

// ParseSpecialty accepts "", "all" or one of the four specialties.
func ParseSpecialty(s string) (Specialty, error) {
	sp := Specialty(strings.ToLower(strings.TrimSpace(s)))
	switch sp {
	case "":
		return SpecialtyAll, nil
	case SpecialtyAll, SpecialtyPrimary, SpecialtyCardiology, SpecialtyOncology, SpecialtyBehavioral:
		return sp, nil
	}
	return "", fmt.Errorf("unknown specialty %q: %w", s, domain.ErrInvalidInput)
}

// Filter is the transparency network filter. Zero value means all/all.
type Filter struct {
	Plan      Plan
	Specialty Specialty
}

// ParseFilter validates both filter values.
func ParseFilter(plan, specialty string) (Filter, error) {
	p, err := ParsePlan(plan)
	if err != nil {
		return Filter{}, err
	}
	sp, err := ParseSpecialty(specialty)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Plan: p, Specialty: sp}, nil
}

// Label is the human-readable filter description.
func (f Filter) Label() string {
	plan := "All Plans"
	if k := f.planKeys(); len(k) == 1 {
		plan = strings.ToUpper(k[0])
	}
	spec := "All Specialties"
	if k := f.specialtyKeys(); len(k) == 1 {
		spec = strings.ToUpper(k[0][:1]) + k[0][1:]
	}
	return plan + " / " + spec
}

// planKeys treats anything unrecognised as "all".
func (f Filter) planKeys() []string {
	switch f.Plan {
	case PlanHMO, PlanPPO, PlanEPO:
		return []string{string(f.Plan)}
	}
	return planKeys
}

func (f Filter) specialtyKeys() []string {
	switch f.Specialty {
	case SpecialtyPrimary, SpecialtyCardiology, SpecialtyOncology, SpecialtyBehavioral:
		return []string{string(f.Specialty)}
	}
	return specialtyKeys
}

package record

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/geolens/internal/domain"
)

// Domain tags which dataset a record belongs to.
type Domain string

const (
	// DomainFraud holds claim anomaly records per county.
	DomainFraud Domain = "fraud"
	// DomainAccess holds care-access equity records per city.
	DomainAccess Domain = "access"
	// DomainCyber holds facility records with risk and status.
	DomainCyber Domain = "cyber"
	// DomainRetention holds membership and churn records per state.
	DomainRetention Domain = "retention"
	// DomainTransparency holds provider network adequacy records per region.
	DomainTransparency Domain = "transparency"
	// DomainRx holds pharmacy copay records.
	DomainRx Domain = "rx"
)

var allDomains = []Domain{
	DomainFraud, DomainAccess, DomainCyber, DomainRetention, DomainTransparency, DomainRx,
}

// All returns every domain in display order.
func All() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

// IsValid checks if the domain is supported.
func (d Domain) IsValid() bool {
	switch d {
	case DomainFraud, DomainAccess, DomainCyber, DomainRetention, DomainTransparency, DomainRx:
		return true
	}
	return false
}

func (d Domain) String() string { return string(d) }

// ParseDomain converts a case-insensitive name into a Domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown domain %q: %w", s, domain.ErrInvalidInput)
	}
	return d, nil
}

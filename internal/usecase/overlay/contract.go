package overlay

import (
	"github.com/kailas-cloud/geolens/internal/catalog"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// Datasets is the read-only catalog view the builder needs.
type Datasets interface {
	Records(d record.Domain) []record.Record
	Links() []catalog.Link
	Territories() []catalog.Territory
	SuitabilitySites() []catalog.Site
	TapestrySegments() []string
}

// Strategy derives the overlay of one domain from its records.
type Strategy interface {
	Domain() record.Domain
	Build(recs []record.Record, f score.Filter) domov.Set
}

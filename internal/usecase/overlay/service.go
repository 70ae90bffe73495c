package overlay

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/logger"
	"github.com/kailas-cloud/geolens/internal/metrics"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

// Service builds per-domain overlays. Stateless apart from the catalog.
type Service struct {
	data       Datasets
	strategies map[record.Domain]Strategy
}

// New creates an overlay service with one strategy per domain.
func New(data Datasets) *Service {
	s := &Service{data: data, strategies: make(map[record.Domain]Strategy)}
	for _, d := range record.All() {
		s.strategies[d] = strategyFor(d, data)
	}
	return s
}

// strategyFor must cover every domain; a missing case fails the builder test.
func strategyFor(d record.Domain, data Datasets) Strategy {
	switch d {
	case record.DomainFraud:
		return fraudStrategy{}
	case record.DomainAccess:
		return accessStrategy{}
	case record.DomainCyber:
		return cyberStrategy{links: data.Links()}
	case record.DomainRetention:
		return retentionStrategy{territories: data.Territories(), segments: data.TapestrySegments()}
	case record.DomainTransparency:
		return transparencyStrategy{}
	case record.DomainRx:
		return rxStrategy{sites: data.SuitabilitySites()}
	}
	return nil
}

// Build computes the overlay set of a domain. The filter only affects transparency.
func (s *Service) Build(ctx context.Context, d record.Domain, f score.Filter) (domov.Set, error) {
	st, ok := s.strategies[d]
	if !ok || st == nil {
		return domov.Set{}, fmt.Errorf("no overlay for domain %q: %w", d, domain.ErrInvalidInput)
	}
	start := time.Now()
	set := st.Build(s.data.Records(d), f)
	set.Domain = d

	metrics.OverlayBuildsTotal.WithLabelValues(string(d)).Inc()
	metrics.OverlayBuildDuration.WithLabelValues(string(d)).Observe(time.Since(start).Seconds())
	logger.FromContext(ctx).Debug("overlay built",
		zap.String("domain", string(d)),
		zap.Int("elements", len(set.Elements)),
	)
	return set, nil
}

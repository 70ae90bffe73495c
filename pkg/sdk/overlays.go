package geolens

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/geolens/internal/catalog"
	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
)

type overlayUseCase interface {
	Build(ctx context.Context, d record.Domain, f score.Filter) (domov.Set, error)
}

// OverlayService derives domain overlays from the built-in datasets.
type OverlayService struct {
	svc  overlayUseCase
	data *catalog.Catalog
	obs  *observer
}

// OverlayOption narrows an overlay build.
type OverlayOption func(*overlayConfig)

type overlayConfig struct {
	plan, specialty string
}

// WithPlan filters transparency regions by plan type (hmo, ppo, epo).
func WithPlan(plan string) OverlayOption {
	return func(c *overlayConfig) { c.plan = plan }
}

// WithSpecialty filters transparency regions by specialty.
func WithSpecialty(specialty string) OverlayOption {
	return func(c *overlayConfig) { c.specialty = specialty }
}

// Domains lists every domain with its record count.
func (s *OverlayService) Domains() map[Domain]int {
	out := make(map[Domain]int, len(record.All()))
	for _, d := range record.All() {
		out[Domain(d)] = len(s.data.Records(d))
	}
	return out
}

// Build derives the overlay for a domain. Filters only affect transparency.
func (s *OverlayService) Build(ctx context.Context, d Domain, opts ...OverlayOption) (_ Overlay, err error) {
	start := time.Now()
	defer func() { s.obs.observe("overlay.build", start, err) }()

	var cfg overlayConfig
	for _, o := range opts {
		o(&cfg)
	}

	dom, err := record.ParseDomain(string(d))
	if err != nil {
		return Overlay{}, fmt.Errorf("build overlay: %w", err)
	}
	f, err := score.ParseFilter(cfg.plan, cfg.specialty)
	if err != nil {
		return Overlay{}, fmt.Errorf("build overlay: %w", err)
	}

	set, err := s.svc.Build(ctx, dom, f)
	if err != nil {
		return Overlay{}, fmt.Errorf("build overlay: %w", err)
	}
	ov := Overlay{
		Domain:  Domain(dom),
		Summary: fromInternalStats(set.Summary),
		GeoJSON: set.FeatureCollection(),
	}
	if dom == record.DomainTransparency {
		ov.Filter = f.Label()
	}
	return ov, nil
}

func fromInternalStats(in []domov.Stat) []Stat {
	out := make([]Stat, len(in))
	for i, st := range in {
		out[i] = Stat{Label: st.Label, Value: st.Value}
	}
	return out
}

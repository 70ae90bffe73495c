package geolens

import (
	"context"
	"fmt"
	"time"

	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

type toolUseCase interface {
	Locate(ctx context.Context, sessionID, address string) (domdisp.Entry, error)
	Equity(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error)
	AddRouteStop(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error)
	Market(ctx context.Context, sessionID string, lat, lng float64) (domdisp.Entry, error)
	SearchProvider(ctx context.Context, sessionID, address, plan, specialty string) (domdisp.Entry, error)
	FindPharmacy(ctx context.Context, sessionID, address string) (domdisp.Entry, error)
	Latest(ctx context.Context, sessionID string, t toolsuc.Tool) (domdisp.Entry, error)
}

// ToolService runs the interactive tools for one session.
//
// Signed-out sessions and clicks outside the tool's tab return an error
// matching ErrPreconditionNotMet; nothing is published for them.
type ToolService struct {
	sessionID string
	svc       toolUseCase
	obs       *observer
}

// Locate geocodes an address (fraud domain).
func (s *ToolService) Locate(ctx context.Context, address string) (ToolResult, error) {
	return s.call(toolsuc.ToolLocate, func() (domdisp.Entry, error) {
		return s.svc.Locate(ctx, s.sessionID, address)
	})
}

// Equity enriches a clicked point with access-equity demographics.
func (s *ToolService) Equity(ctx context.Context, lat, lng float64) (ToolResult, error) {
	return s.call(toolsuc.ToolEquity, func() (domdisp.Entry, error) {
		return s.svc.Equity(ctx, s.sessionID, lat, lng)
	})
}

// AddRouteStop records a clicked stop; the second stop solves the route.
func (s *ToolService) AddRouteStop(ctx context.Context, lat, lng float64) (ToolResult, error) {
	return s.call(toolsuc.ToolRoute, func() (domdisp.Entry, error) {
		return s.svc.AddRouteStop(ctx, s.sessionID, lat, lng)
	})
}

// Market enriches a clicked point with market demographics.
func (s *ToolService) Market(ctx context.Context, lat, lng float64) (ToolResult, error) {
	return s.call(toolsuc.ToolMarket, func() (domdisp.Entry, error) {
		return s.svc.Market(ctx, s.sessionID, lat, lng)
	})
}

// SearchProvider finds the nearest transparency region to an address.
func (s *ToolService) SearchProvider(ctx context.Context, address string, opts ...OverlayOption) (ToolResult, error) {
	var cfg overlayConfig
	for _, o := range opts {
		o(&cfg)
	}
	return s.call(toolsuc.ToolProvider, func() (domdisp.Entry, error) {
		return s.svc.SearchProvider(ctx, s.sessionID, address, cfg.plan, cfg.specialty)
	})
}

// FindPharmacy finds the nearest pharmacy and its drive-time zones.
func (s *ToolService) FindPharmacy(ctx context.Context, address string) (ToolResult, error) {
	return s.call(toolsuc.ToolPharmacy, func() (domdisp.Entry, error) {
		return s.svc.FindPharmacy(ctx, s.sessionID, address)
	})
}

// Latest returns the most recent result of a tool ("locate", "route", ...).
func (s *ToolService) Latest(ctx context.Context, tool string) (_ ToolResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tool.latest", start, err) }()

	t, err := toolsuc.ParseTool(tool)
	if err != nil {
		return ToolResult{}, fmt.Errorf("latest: %w", err)
	}
	e, err := s.svc.Latest(ctx, s.sessionID, t)
	if err != nil {
		return ToolResult{}, fmt.Errorf("latest %s: %w", t, err)
	}
	return fromInternalEntry(e), nil
}

func (s *ToolService) call(t toolsuc.Tool, fn func() (domdisp.Entry, error)) (_ ToolResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("tool."+t.String(), start, err) }()

	e, err := fn()
	if err != nil {
		return ToolResult{}, fmt.Errorf("%s: %w", t, err)
	}
	return fromInternalEntry(e), nil
}

func fromInternalEntry(e domdisp.Entry) ToolResult {
	return ToolResult{
		Tool:        e.Tool,
		OK:          e.Status == domdisp.StatusOK,
		Message:     e.Message,
		Data:        e.Data,
		Overlay:     e.Overlay,
		PublishedAt: e.PublishedAt,
	}
}

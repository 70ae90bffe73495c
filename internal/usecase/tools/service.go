// Package tools runs the per-domain interactive tools of a session and
// publishes each outcome to the display board.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain"
	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
	"github.com/kailas-cloud/geolens/internal/logger"
	"github.com/kailas-cloud/geolens/internal/metrics"
)

// Tool outcomes for metrics.
const (
	outcomePublished = "published"
	outcomeIgnored   = "ignored"
	outcomeError     = "error"
)

// Service runs tools against a session.
type Service struct {
	gw       Gateway
	sessions Sessions
	board    Board
	data     Datasets
	now      func() time.Time
}

// New creates the tools service.
func New(gw Gateway, sessions Sessions, board Board, data Datasets) *Service {
	return &Service{gw: gw, sessions: sessions, board: board, data: data, now: time.Now}
}

// Latest returns the most recent published result of a tool.
func (s *Service) Latest(ctx context.Context, sessionID string, t Tool) (domdisp.Entry, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return domdisp.Entry{}, fmt.Errorf("get session: %w", err)
	}
	e, err := s.board.Latest(ctx, sessionID, t.String())
	if err != nil {
		return domdisp.Entry{}, fmt.Errorf("latest %s: %w", t, err)
	}
	return e, nil
}

// outcome is what a tool produced before it becomes a board entry.
type outcome struct {
	message string
	data    any
	overlay *geojson.FeatureCollection
}

// run loads the session, executes fn and publishes the result.
// Ignored interactions (guards, invalid input) publish nothing.
// Backend failures publish an error entry and are returned.
func (s *Service) run(
	ctx context.Context, t Tool, sessionID string, fn func(*domsess.Session) (outcome, error),
) (domdisp.Entry, error) {
	log := logger.FromContext(ctx).With(zap.String("tool", t.String()), zap.String("session_id", sessionID))

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domdisp.Entry{}, fmt.Errorf("get session: %w", err)
	}

	out, err := fn(sess)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPreconditionNotMet), errors.Is(err, domain.ErrInvalidInput):
		metrics.ToolInvocationsTotal.WithLabelValues(t.String(), outcomeIgnored).Inc()
		log.Debug("Tool interaction ignored", zap.Error(err))
		return domdisp.Entry{}, err
	case errors.Is(err, domain.ErrServiceUnavailable):
		metrics.ToolInvocationsTotal.WithLabelValues(t.String(), outcomeError).Inc()
		log.Warn("Tool failed", zap.Error(err))
		e := s.entry(sessionID, t, domdisp.StatusError)
		e.Message = err.Error()
		if pubErr := s.board.Publish(ctx, e); pubErr != nil {
			log.Error("Failed to publish tool error", zap.Error(pubErr))
		}
		return e, err
	default:
		metrics.ToolInvocationsTotal.WithLabelValues(t.String(), outcomeError).Inc()
		return domdisp.Entry{}, err
	}

	e := s.entry(sessionID, t, domdisp.StatusOK)
	e.Message = out.message
	e.Overlay = out.overlay
	if out.data != nil {
		raw, err := json.Marshal(out.data)
		if err != nil {
			return domdisp.Entry{}, fmt.Errorf("encode %s result: %w", t, err)
		}
		e.Data = raw
	}
	if err := s.board.Publish(ctx, e); err != nil {
		metrics.ToolInvocationsTotal.WithLabelValues(t.String(), outcomeError).Inc()
		return domdisp.Entry{}, err
	}
	metrics.ToolInvocationsTotal.WithLabelValues(t.String(), outcomePublished).Inc()
	log.Debug("Tool result published")
	return e, nil
}

func (s *Service) entry(sessionID string, t Tool, st domdisp.Status) domdisp.Entry {
	return domdisp.Entry{SessionID: sessionID, Tool: t.String(), Status: st, PublishedAt: s.now().UTC()}
}

func requireAuth(sess *domsess.Session) error {
	if !sess.Authenticated() {
		return fmt.Errorf("%w: not authenticated", domain.ErrPreconditionNotMet)
	}
	return nil
}

func requireTab(sess *domsess.Session, t Tool) error {
	if !sess.OnTab(t.Domain()) {
		return fmt.Errorf("%w: %s tab is not active", domain.ErrPreconditionNotMet, t.Domain())
	}
	return nil
}

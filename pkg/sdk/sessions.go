package geolens

import (
	"context"
	"fmt"
	"time"

	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

type sessionUseCase interface {
	Create(ctx context.Context) (*domsess.Session, error)
	Get(ctx context.Context, id string) (*domsess.Session, error)
	SignIn(ctx context.Context, id, credential, label string) (*domsess.Session, error)
	SignOut(ctx context.Context, id string) (*domsess.Session, error)
	SwitchTab(ctx context.Context, id, tab string) (*domsess.Session, error)
	Delete(ctx context.Context, id string) error
}

type enrichmentUseCase interface {
	Enrich(ctx context.Context, sess *domsess.Session, lat, lng float64, d record.Domain) (domen.Result, error)
}

// SessionService manages interaction sessions.
type SessionService struct {
	svc        sessionUseCase
	enrichment enrichmentUseCase
	obs        *observer
}

// Create starts a signed-out session on the overview tab.
func (s *SessionService) Create(ctx context.Context) (_ Session, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.create", start, err) }()

	sess, err := s.svc.Create(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return fromInternalSession(sess), nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (_ Session, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.get", start, err) }()

	sess, err := s.svc.Get(ctx, id)
	if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	return fromInternalSession(sess), nil
}

// SignIn attaches a backend API key. The key is never returned.
func (s *SessionService) SignIn(ctx context.Context, id, apiKey string) (_ Session, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.sign_in", start, err) }()

	sess, err := s.svc.SignIn(ctx, id, apiKey, "")
	if err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}
	return fromInternalSession(sess), nil
}

// SignOut drops the credential and pending route stops.
func (s *SessionService) SignOut(ctx context.Context, id string) (_ Session, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.sign_out", start, err) }()

	sess, err := s.svc.SignOut(ctx, id)
	if err != nil {
		return Session{}, fmt.Errorf("sign out: %w", err)
	}
	return fromInternalSession(sess), nil
}

// SwitchTab activates "overview" or a domain tab.
func (s *SessionService) SwitchTab(ctx context.Context, id, tab string) (_ Session, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.switch_tab", start, err) }()

	sess, err := s.svc.SwitchTab(ctx, id, tab)
	if err != nil {
		return Session{}, fmt.Errorf("switch tab: %w", err)
	}
	return fromInternalSession(sess), nil
}

// Delete removes a session.
func (s *SessionService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Enrich returns demographic context for a point using the session's
// credential. Backend failures come back as simulated values, not errors.
func (s *SessionService) Enrich(ctx context.Context, id string, lat, lng float64, d Domain) (_ Enrichment, err error) {
	start := time.Now()
	defer func() { s.obs.observe("session.enrich", start, err) }()

	dom, err := record.ParseDomain(string(d))
	if err != nil {
		return Enrichment{}, fmt.Errorf("enrich: %w", err)
	}
	sess, err := s.svc.Get(ctx, id)
	if err != nil {
		return Enrichment{}, fmt.Errorf("enrich: %w", err)
	}
	res, err := s.enrichment.Enrich(ctx, sess, lat, lng, dom)
	if err != nil {
		return Enrichment{}, fmt.Errorf("enrich: %w", err)
	}
	return fromInternalEnrichment(res), nil
}

func fromInternalSession(s *domsess.Session) Session {
	return Session{
		ID:                s.ID,
		Authenticated:     s.Authenticated(),
		Label:             s.Label,
		ActiveTab:         s.ActiveTab,
		PendingRouteStops: len(s.RouteStops),
		CreatedAt:         s.CreatedAt,
	}
}

func fromInternalEnrichment(r domen.Result) Enrichment {
	return Enrichment{
		Provenance: Provenance(r.Provenance()),
		Reason:     r.Reason(),
		Schema:     string(r.Schema()),
		Lat:        r.Lat(),
		Lng:        r.Lng(),
		Values:     r.Values(),
	}
}

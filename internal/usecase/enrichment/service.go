package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain"
	domen "github.com/kailas-cloud/geolens/internal/domain/enrichment"
	"github.com/kailas-cloud/geolens/internal/domain/geo"
	"github.com/kailas-cloud/geolens/internal/domain/locator"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/domain/session"
	"github.com/kailas-cloud/geolens/internal/logger"
	"github.com/kailas-cloud/geolens/internal/metrics"
)

// Fallback reasons reported on simulated results.
const (
	ReasonUnauthenticated   = "unauthenticated"
	ReasonCredentialExpired = "credential_expired"
	ReasonNoResults         = "no_results"
	ReasonMalformed         = "malformed_response"
	ReasonBackendError      = "backend_error"
)

// Service is the enrichment gateway: live backend first, deterministic simulation on any failure.
type Service struct {
	backend  Backend
	segments []string
}

// New creates a gateway. segments is the tapestry label pool for simulated market results.
func New(backend Backend, segments []string) *Service {
	return &Service{backend: backend, segments: append([]string(nil), segments...)}
}

// Enrich returns demographic context for a point. It fails only for invalid
// coordinates or domain; every backend problem becomes a Simulated result.
func (s *Service) Enrich(
	ctx context.Context, sess *session.Session, lat, lng float64, d record.Domain,
) (domen.Result, error) {
	if !geo.ValidateCoordinates(lat, lng) {
		return domen.Result{}, fmt.Errorf("%w: coordinates out of range", domain.ErrInvalidInput)
	}
	if !d.IsValid() {
		return domen.Result{}, fmt.Errorf("%w: unknown domain %q", domain.ErrInvalidInput, d)
	}

	if sess == nil || !sess.Authenticated() {
		return s.simulated(d, lat, lng, ReasonUnauthenticated), nil
	}

	res, err := s.tryLive(ctx, sess.Credential, lat, lng, d)
	if err != nil {
		reason := fallbackReason(err)
		logger.FromContext(ctx).Warn("Enrichment fell back to simulated data",
			zap.String("domain", d.String()),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return s.simulated(d, lat, lng, reason), nil
	}

	metrics.EnrichmentsTotal.WithLabelValues(d.String(), string(domen.ProvenanceLive), "ok").Inc()
	return res, nil
}

func (s *Service) tryLive(ctx context.Context, token string, lat, lng float64, d record.Domain) (domen.Result, error) {
	attrs, err := s.backend.Enrich(ctx, token, geo.Point(lat, lng), domen.SchemaFor(d).Variables())
	if err != nil {
		return domen.Result{}, fmt.Errorf("live enrich: %w", err)
	}
	if len(attrs) == 0 {
		return domen.Result{}, fmt.Errorf("live enrich: %w", domain.ErrNoResults)
	}
	res, err := normalize(d, lat, lng, attrs)
	if err != nil {
		return domen.Result{}, fmt.Errorf("normalize: %w", err)
	}
	return res, nil
}

func (s *Service) simulated(d record.Domain, lat, lng float64, reason string) domen.Result {
	metrics.EnrichmentsTotal.WithLabelValues(d.String(), string(domen.ProvenanceSimulated), reason).Inc()
	return Simulate(d, lat, lng, s.segments).WithReason(reason)
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCredentialExpired):
		return ReasonCredentialExpired
	case errors.Is(err, domain.ErrNoResults):
		return ReasonNoResults
	case errors.Is(err, domain.ErrMalformedResponse):
		return ReasonMalformed
	default:
		return ReasonBackendError
	}
}

// Geocode resolves an address. Unauthenticated sessions get ErrPreconditionNotMet.
func (s *Service) Geocode(ctx context.Context, sess *session.Session, address string) (locator.Candidate, error) {
	if err := requireAuth(sess); err != nil {
		return locator.Candidate{}, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return locator.Candidate{}, fmt.Errorf("%w: address is empty", domain.ErrInvalidInput)
	}
	c, err := s.backend.Geocode(ctx, sess.Credential, address)
	if err != nil {
		return locator.Candidate{}, asServiceError("geocode", err)
	}
	return c, nil
}

// Route solves a route through the stops.
func (s *Service) Route(ctx context.Context, sess *session.Session, stops []orb.Point) (locator.Route, error) {
	if err := requireAuth(sess); err != nil {
		return locator.Route{}, err
	}
	if len(stops) < 2 {
		return locator.Route{}, fmt.Errorf("%w: a route needs at least two stops", domain.ErrInvalidInput)
	}
	r, err := s.backend.Route(ctx, sess.Credential, stops)
	if err != nil {
		return locator.Route{}, asServiceError("route", err)
	}
	return r, nil
}

// ServiceArea computes drive-time bands, in minutes, around a facility.
func (s *Service) ServiceArea(
	ctx context.Context, sess *session.Session, facility orb.Point, breaks []float64,
) ([]locator.ServiceArea, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	if len(breaks) == 0 {
		return nil, fmt.Errorf("%w: no drive-time breaks", domain.ErrInvalidInput)
	}
	areas, err := s.backend.ServiceArea(ctx, sess.Credential, facility, breaks)
	if err != nil {
		return nil, asServiceError("service_area", err)
	}
	return areas, nil
}

func requireAuth(sess *session.Session) error {
	if sess == nil || !sess.Authenticated() {
		return fmt.Errorf("%w: not authenticated", domain.ErrPreconditionNotMet)
	}
	return nil
}

func asServiceError(op string, err error) error {
	var se *domain.ServiceError
	if errors.As(err, &se) {
		return err
	}
	return domain.NewServiceError(op, err)
}

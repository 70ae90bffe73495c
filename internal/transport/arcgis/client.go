// Package arcgis is a REST client for the ArcGIS-style geocode, route,
// service area and geoenrichment services.
package arcgis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/metrics"
)

// Backend operations, used as metric labels and ServiceError ops.
const (
	OpGeocode     = "geocode"
	OpRoute       = "route"
	OpServiceArea = "service_area"
	OpEnrich      = "enrich"
)

const maxResponseBytes = 8 << 20

// Token error codes: 498 invalid/expired, 499 token required.
const (
	codeInvalidToken  = 498
	codeTokenRequired = 499
)

// Config holds the backend endpoints.
type Config struct {
	GeocodeURL     string
	RouteURL       string
	ServiceAreaURL string
	EnrichURL      string
	Timeout        time.Duration
	HTTPClient     *http.Client
	Logger         *zap.Logger
}

// Client calls the geo backend. Safe for concurrent use.
type Client struct {
	geocodeURL     string
	routeURL       string
	serviceAreaURL string
	enrichURL      string
	http           *http.Client
	logger         *zap.Logger
}

// NewClient creates a backend client.
func NewClient(cfg *Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		geocodeURL:     strings.TrimRight(cfg.GeocodeURL, "/"),
		routeURL:       strings.TrimRight(cfg.RouteURL, "/"),
		serviceAreaURL: strings.TrimRight(cfg.ServiceAreaURL, "/"),
		enrichURL:      cfg.EnrichURL,
		http:           hc,
		logger:         log,
	}
}

// HealthCheck fetches the geocode service description, which needs no token.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?f=json", http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocode service: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode service: status %d", resp.StatusCode)
	}
	return nil
}

// apiError is the error envelope returned with HTTP 200.
type apiError struct {
	Error *struct {
		Code    int      `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

// post sends a form request and hands the JSON reply to parse, recording metrics.
// Every failure is returned as a *domain.ServiceError for op.
func (c *Client) post(ctx context.Context, op, endpoint string, form url.Values, parse func([]byte) error) error {
	start := time.Now()
	body, err := c.do(ctx, endpoint, form)
	if err == nil {
		err = parse(body)
	}
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		metrics.BackendErrorsTotal.WithLabelValues(op, errorType(err)).Inc()
		c.logger.Debug("Backend request failed", zap.String("operation", op), zap.Error(err))
		return domain.NewServiceError(op, err)
	}
	metrics.BackendRequestsTotal.WithLabelValues(op, "success").Inc()
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	return nil
}

func (c *Client) do(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: truncate(body)}
	}

	var env apiError
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", domain.ErrMalformedResponse)
	}
	if env.Error != nil {
		switch env.Error.Code {
		case codeInvalidToken, codeTokenRequired:
			return nil, fmt.Errorf("api error %d: %s: %w", env.Error.Code, env.Error.Message, domain.ErrCredentialExpired)
		default:
			return nil, fmt.Errorf("api error %d: %s", env.Error.Code, env.Error.Message)
		}
	}
	return body, nil
}

// decode unmarshals a reply body; syntax or type mismatches are malformed responses.
func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, domain.ErrMalformedResponse)
	}
	return nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func errorType(err error) string {
	var se *statusError
	switch {
	case errors.Is(err, domain.ErrCredentialExpired):
		return "credential_expired"
	case errors.Is(err, domain.ErrNoResults):
		return "no_results"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed_response"
	case errors.As(err, &se):
		return "http_status"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "api_error"
	}
}

func truncate(b []byte) string {
	const limit = 200
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}

func withToken(form url.Values, token string) url.Values {
	form.Set("f", "json")
	if token != "" {
		form.Set("token", token)
	}
	return form
}

package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded means the backend is unreachable; enrichment falls back to simulated data.
	Degraded Status = "degraded"
	// Unhealthy means the session store is down.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckError CheckResult = "error"
)

// Component names in a report.
const (
	ComponentSessionStore = "session_store"
	ComponentGeoBackend   = "geo_backend"
)

const checkTimeout = 3 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	store   StorePinger
	backend BackendChecker
}

// New creates a Service. backend can be nil.
func New(store StorePinger, backend BackendChecker) *Service {
	return &Service{store: store, backend: backend}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if err := probe(ctx, s.store.Ping); err != nil {
		checks[ComponentSessionStore] = CheckError
		status = Unhealthy
	} else {
		checks[ComponentSessionStore] = CheckOK
	}

	if s.backend != nil {
		if err := probe(ctx, s.backend.HealthCheck); err != nil {
			checks[ComponentGeoBackend] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks[ComponentGeoBackend] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}

func probe(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return fn(ctx)
}

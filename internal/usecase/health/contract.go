package health

import "context"

// StorePinger checks session store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// BackendChecker checks geo backend reachability.
type BackendChecker interface {
	HealthCheck(ctx context.Context) error
}

package geolens

import "github.com/kailas-cloud/geolens/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrInvalidInput       = domain.ErrInvalidInput
	ErrPreconditionNotMet = domain.ErrPreconditionNotMet
	ErrServiceUnavailable = domain.ErrServiceUnavailable
	ErrCredentialExpired  = domain.ErrCredentialExpired
)

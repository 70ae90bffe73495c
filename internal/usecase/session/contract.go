package session

import (
	"context"

	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// Repository persists sessions.
type Repository interface {
	Get(ctx context.Context, id string) (*domsess.Session, error)
	Save(ctx context.Context, s *domsess.Session) error
	Delete(ctx context.Context, id string) error
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
	"github.com/kailas-cloud/geolens/internal/logger"
)

// Service manages session lifecycle, credentials and the active tab.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides uuid-based ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// New creates a session service.
func New(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create starts an unauthenticated session on the overview tab.
func (s *Service) Create(ctx context.Context) (*domsess.Session, error) {
	sess := domsess.New(s.newID(), s.now().UTC())
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	logger.FromContext(ctx).Debug("Session created", zap.String("session_id", sess.ID))
	return sess, nil
}

// Get loads a session.
func (s *Service) Get(ctx context.Context, id string) (*domsess.Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Save persists a session mutated by a tool.
func (s *Service) Save(ctx context.Context, sess *domsess.Session) error {
	if err := s.repo.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SignIn attaches a backend credential to the session.
func (s *Service) SignIn(ctx context.Context, id, credential, label string) (*domsess.Session, error) {
	return s.update(ctx, id, func(sess *domsess.Session) error {
		return sess.SignIn(credential, label)
	})
}

// SignOut drops the credential.
func (s *Service) SignOut(ctx context.Context, id string) (*domsess.Session, error) {
	return s.update(ctx, id, func(sess *domsess.Session) error {
		sess.SignOut()
		return nil
	})
}

// SwitchTab activates a tab.
func (s *Service) SwitchTab(ctx context.Context, id, tab string) (*domsess.Session, error) {
	return s.update(ctx, id, func(sess *domsess.Session) error {
		return sess.SwitchTab(tab)
	})
}

// Delete ends a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Service) update(ctx context.Context, id string, fn func(*domsess.Session) error) (*domsess.Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

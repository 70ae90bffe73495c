// Package valkey is the rueidis-backed db.Store for `session.driver: valkey`.
// It holds the same session and display-state keys as the memory driver, so
// several geolens replicas can share one conversation.
package valkey

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/geolens/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// pollInterval is the WaitForReady retry period.
const pollInterval = 100 * time.Millisecond

// Config mirrors the session section of the service config.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store keeps values as plain strings with SET EX; no client-side cache, so a
// display write by one replica is visible to the next read on another.
type Store struct {
	client rueidis.Client
}

// NewStore connects to the configured nodes. rueidis dials eagerly, so an
// unreachable address fails here rather than on the first session write.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, db.ErrNoAddrs
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("valkey %v: %w", cfg.Addrs, err)
	}

	return &Store{client: client}, nil
}

// Ping backs the /health store check.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.do(ctx, s.b().Ping().Build()).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady blocks serve startup until PING succeeds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last error
	for {
		select {
		case <-ctx.Done():
			if last != nil {
				return fmt.Errorf("valkey not ready (last: %v): %w", last, ctx.Err())
			}
			return fmt.Errorf("valkey not ready: %w", ctx.Err())
		case <-ticker.C:
			if last = s.Ping(ctx); last == nil {
				return nil
			}
		}
	}
}

func (s *Store) do(ctx context.Context, cmd rueidis.Completed) rueidis.RedisResult {
	return s.client.Do(ctx, cmd)
}

func (s *Store) b() rueidis.Builder {
	return s.client.B()
}

// Package memory is a single-process db.Store used when no Valkey is configured.
package memory

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/kailas-cloud/geolens/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store keeps session and display-state values in a ttlcache. Reads do not
// extend a key's TTL, matching the Valkey GET/SET EX behavior.
type Store struct {
	cache *ttlcache.Cache[string, []byte]
}

// NewStore creates an empty store and starts its expiry janitor.
func NewStore() *Store {
	c := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start()
	return &Store{cache: c}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close stops the janitor and drops all keys.
func (s *Store) Close() {
	s.cache.Stop()
	s.cache.DeleteAll()
}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// Get retrieves a copy of the value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, db.ErrKeyNotFound
	}
	return append([]byte(nil), item.Value()...), nil
}

// SetWithTTL stores a copy of value. A zero ttl stores without expiry.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.cache.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Del removes a key.
func (s *Store) Del(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Exists reports whether the key is present and not expired.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	return s.cache.Has(key), nil
}

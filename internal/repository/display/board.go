package display

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/geolens/internal/db"
	"github.com/kailas-cloud/geolens/internal/domain"
	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
)

// store is the consumer interface for the display board (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Board keeps the most recent result per (session, tool). Publish is a plain
// overwrite, so the last response to complete wins.
type Board struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a display board.
func New(s store, prefix string, ttl time.Duration) *Board {
	return &Board{store: s, prefix: prefix + "display:", ttl: ttl}
}

// Publish replaces the current entry for the entry's session and tool.
func (b *Board) Publish(ctx context.Context, e domdisp.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode display entry: %w", err)
	}
	if err := b.store.SetWithTTL(ctx, b.key(e.SessionID, e.Tool), data, b.ttl); err != nil {
		return fmt.Errorf("publish %s/%s: %w", e.SessionID, e.Tool, err)
	}
	return nil
}

// Latest returns the current entry or domain.ErrNotFound.
func (b *Board) Latest(ctx context.Context, sessionID, tool string) (domdisp.Entry, error) {
	data, err := b.store.Get(ctx, b.key(sessionID, tool))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdisp.Entry{}, fmt.Errorf("display %s/%s: %w", sessionID, tool, domain.ErrNotFound)
		}
		return domdisp.Entry{}, fmt.Errorf("get display %s/%s: %w", sessionID, tool, err)
	}
	var e domdisp.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return domdisp.Entry{}, fmt.Errorf("decode display entry: %w", err)
	}
	return e, nil
}

func (b *Board) key(sessionID, tool string) string {
	return b.prefix + sessionID + ":" + tool
}

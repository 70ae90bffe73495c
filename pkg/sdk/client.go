package geolens

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/config"
	"github.com/kailas-cloud/geolens/internal/db"
	dbMemory "github.com/kailas-cloud/geolens/internal/db/memory"
	dbRedis "github.com/kailas-cloud/geolens/internal/db/redis"
	dbValkey "github.com/kailas-cloud/geolens/internal/db/valkey"
	displayrepo "github.com/kailas-cloud/geolens/internal/repository/display"
	sessionrepo "github.com/kailas-cloud/geolens/internal/repository/session"
	"github.com/kailas-cloud/geolens/internal/transport/arcgis"
	enrichmentuc "github.com/kailas-cloud/geolens/internal/usecase/enrichment"
	healthuc "github.com/kailas-cloud/geolens/internal/usecase/health"
	overlayuc "github.com/kailas-cloud/geolens/internal/usecase/overlay"
	sessionuc "github.com/kailas-cloud/geolens/internal/usecase/session"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultSessionTTL       = 8 * time.Hour
	defaultKeyPrefix        = "geolens:"
	defaultBackendTimeout   = 15 * time.Second
)

// Client is the geolens SDK entry point.
type Client struct {
	store      db.Store
	data       *catalog.Catalog
	overlays   overlayUseCase
	enrichment enrichmentUseCase
	sessions   sessionUseCase
	tools      toolUseCase
	health     healthUseCase
	obs        *observer
}

// New creates a Client. Without WithValkey or WithRedis sessions are kept in memory.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:         "memory",
		sessionTTL:     defaultSessionTTL,
		keyPrefix:      defaultKeyPrefix,
		backendTimeout: defaultBackendTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	data, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("geolens: load datasets: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("geolens: session store not ready: %w", err)
	}

	be := arcgis.NewClient(&arcgis.Config{
		GeocodeURL:     orDefault(cfg.backend.Geocode, config.DefaultGeocodeURL),
		RouteURL:       orDefault(cfg.backend.Route, config.DefaultRouteURL),
		ServiceAreaURL: orDefault(cfg.backend.ServiceArea, config.DefaultServiceAreaURL),
		EnrichURL:      orDefault(cfg.backend.Enrich, config.DefaultEnrichURL),
		Timeout:        cfg.backendTimeout,
		HTTPClient:     cfg.httpClient,
	})
	return wireClient(store, data, be, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "valkey":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("geolens: create valkey store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("geolens: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("geolens: unknown driver %q", cfg.driver)
	}
}

// backend is the geo backend as seen by the gateway and the health check.
type backend interface {
	enrichmentuc.Backend
	healthuc.BackendChecker
}

func wireClient(store db.Store, data *catalog.Catalog, be backend, cfg *clientConfig, obs *observer) *Client {
	gateway := enrichmentuc.New(be, data.TapestrySegments())
	sessions := sessionuc.New(sessionrepo.New(store, cfg.keyPrefix, cfg.sessionTTL))
	board := displayrepo.New(store, cfg.keyPrefix, cfg.sessionTTL)

	return &Client{
		store:      store,
		data:       data,
		overlays:   overlayuc.New(data),
		enrichment: gateway,
		sessions:   sessions,
		tools:      toolsuc.New(gateway, sessions, board, data),
		health:     healthuc.New(store, be),
		obs:        obs,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks session store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Overlays returns the overlay service.
func (c *Client) Overlays() *OverlayService {
	return &OverlayService{svc: c.overlays, data: c.data, obs: c.obs}
}

// Sessions returns the session service.
func (c *Client) Sessions() *SessionService {
	return &SessionService{svc: c.sessions, enrichment: c.enrichment, obs: c.obs}
}

// Tools returns the interactive tools bound to a session.
func (c *Client) Tools(sessionID string) *ToolService {
	return &ToolService{sessionID: sessionID, svc: c.tools, obs: c.obs}
}

// Package chi exposes overlays, sessions and interactive tools over HTTP.
package chi

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/geolens/internal/domain/record"
	enrichmentuc "github.com/kailas-cloud/geolens/internal/usecase/enrichment"
	healthuc "github.com/kailas-cloud/geolens/internal/usecase/health"
	overlayuc "github.com/kailas-cloud/geolens/internal/usecase/overlay"
	sessionuc "github.com/kailas-cloud/geolens/internal/usecase/session"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

// Datasets is the catalog view used for the domain listing.
type Datasets interface {
	Records(d record.Domain) []record.Record
}

// Server holds the HTTP handlers.
type Server struct {
	data          Datasets
	overlays      *overlayuc.Service
	enrichment    *enrichmentuc.Service
	sessions      *sessionuc.Service
	tools         *toolsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	data Datasets,
	overlays *overlayuc.Service,
	enrichment *enrichmentuc.Service,
	sessions *sessionuc.Service,
	tools *toolsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		data:          data,
		overlays:      overlays,
		enrichment:    enrichment,
		sessions:      sessions,
		tools:         tools,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kailas-cloud/geolens/internal/metrics"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

// NewRouter mounts the API with recovery, request ids, canonical request
// logging, bearer auth and HTTP metrics.
func NewRouter(s *Server, apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware(toolNames()...))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/domains", s.ListDomains)
	r.Get("/overlays/{domain}", s.GetOverlay)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Put("/auth", s.SignIn)
			r.Delete("/auth", s.SignOut)
			r.Put("/tab", s.SwitchTab)
			r.Post("/enrich", s.Enrich)
			r.Post("/tools/{tool}", s.RunTool)
			r.Get("/display/{tool}", s.GetDisplay)
		})
	})
	return r
}

func toolNames() []string {
	all := toolsuc.All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return names
}

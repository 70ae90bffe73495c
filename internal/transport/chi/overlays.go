package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb/geojson"

	domov "github.com/kailas-cloud/geolens/internal/domain/overlay"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	"github.com/kailas-cloud/geolens/internal/usecase/score"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

// DomainInfo describes one dataset tab.
type DomainInfo struct {
	Domain  string `json:"domain"`
	Records int    `json:"records"`
	Tool    string `json:"tool"`
}

// OverlayResponse is a derived overlay with its summary panel.
type OverlayResponse struct {
	Domain  string                     `json:"domain"`
	Filter  string                     `json:"filter,omitempty"`
	Summary []domov.Stat               `json:"summary"`
	Overlay *geojson.FeatureCollection `json:"overlay"`
}

// ListDomains handles GET /domains.
func (s *Server) ListDomains(w http.ResponseWriter, _ *http.Request) {
	toolFor := make(map[record.Domain]string)
	for _, t := range toolsuc.All() {
		toolFor[t.Domain()] = t.String()
	}

	items := make([]DomainInfo, 0, len(record.All()))
	for _, d := range record.All() {
		items = append(items, DomainInfo{
			Domain:  d.String(),
			Records: len(s.data.Records(d)),
			Tool:    toolFor[d],
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// GetOverlay handles GET /overlays/{domain}?plan=&specialty=.
func (s *Server) GetOverlay(w http.ResponseWriter, r *http.Request) {
	d, err := record.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	q := r.URL.Query()
	f, err := score.ParseFilter(q.Get("plan"), q.Get("specialty"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	set, err := s.overlays.Build(r.Context(), d, f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := OverlayResponse{
		Domain:  d.String(),
		Summary: set.Summary,
		Overlay: set.FeatureCollection(),
	}
	if d == record.DomainTransparency {
		resp.Filter = f.Label()
	}
	writeJSON(w, http.StatusOK, resp)
}

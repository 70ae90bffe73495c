package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/geolens/internal/domain"
	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	toolsuc "github.com/kailas-cloud/geolens/internal/usecase/tools"
)

// ToolRequest is the body of POST /sessions/{id}/tools/{tool}. Address tools
// (locate, provider, pharmacy) read address; click tools read lat/lng.
type ToolRequest struct {
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Plan      string   `json:"plan"`
	Specialty string   `json:"specialty"`
}

// RunTool handles POST /sessions/{id}/tools/{tool}.
// Ignored interactions answer 204; completed ones return the published entry.
func (s *Server) RunTool(w http.ResponseWriter, r *http.Request) {
	t, err := toolsuc.ParseTool(chi.URLParam(r, "tool"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	var req ToolRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx := r.Context()
	id := chi.URLParam(r, "id")
	var entry domdisp.Entry

	switch t {
	case toolsuc.ToolLocate:
		entry, err = s.tools.Locate(ctx, id, req.Address)
	case toolsuc.ToolProvider:
		entry, err = s.tools.SearchProvider(ctx, id, req.Address, req.Plan, req.Specialty)
	case toolsuc.ToolPharmacy:
		entry, err = s.tools.FindPharmacy(ctx, id, req.Address)
	default:
		if req.Lat == nil || req.Lng == nil {
			s.handleDomainError(w, fmt.Errorf("%w: lat and lng are required for %s", domain.ErrInvalidInput, t))
			return
		}
		lat, lng := *req.Lat, *req.Lng
		switch t {
		case toolsuc.ToolEquity:
			entry, err = s.tools.Equity(ctx, id, lat, lng)
		case toolsuc.ToolRoute:
			entry, err = s.tools.AddRouteStop(ctx, id, lat, lng)
		case toolsuc.ToolMarket:
			entry, err = s.tools.Market(ctx, id, lat, lng)
		}
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// GetDisplay handles GET /sessions/{id}/display/{tool}.
func (s *Server) GetDisplay(w http.ResponseWriter, r *http.Request) {
	t, err := toolsuc.ParseTool(chi.URLParam(r, "tool"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	entry, err := s.tools.Latest(r.Context(), chi.URLParam(r, "id"), t)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

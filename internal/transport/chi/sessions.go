package chi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
)

// SessionResponse is the public view of a session; the credential is never returned.
type SessionResponse struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	Label         string    `json:"label,omitempty"`
	ActiveTab     string    `json:"active_tab"`
	PendingStops  int       `json:"pending_route_stops"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignInRequest is the body of PUT /sessions/{id}/auth.
type SignInRequest struct {
	APIKey string `json:"api_key"`
	Label  string `json:"label"`
}

// SwitchTabRequest is the body of PUT /sessions/{id}/tab.
type SwitchTabRequest struct {
	Tab string `json:"tab"`
}

// EnrichRequest is the body of POST /sessions/{id}/enrich.
type EnrichRequest struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Domain string   `json:"domain"`
}

func sessionToResponse(s *domsess.Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		Authenticated: s.Authenticated(),
		Label:         s.Label,
		ActiveTab:     s.ActiveTab,
		PendingStops:  len(s.RouteStops),
		CreatedAt:     s.CreatedAt,
	}
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, sessionToResponse(sess))
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SignIn handles PUT /sessions/{id}/auth.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := s.sessions.SignIn(r.Context(), chi.URLParam(r, "id"), req.APIKey, req.Label)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// SignOut handles DELETE /sessions/{id}/auth.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.SignOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// SwitchTab handles PUT /sessions/{id}/tab.
func (s *Server) SwitchTab(w http.ResponseWriter, r *http.Request) {
	var req SwitchTabRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := s.sessions.SwitchTab(r.Context(), chi.URLParam(r, "id"), req.Tab)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// Enrich handles POST /sessions/{id}/enrich. It never returns a backend
// error: failures come back as a simulated result.
func (s *Server) Enrich(w http.ResponseWriter, r *http.Request) {
	var req EnrichRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Lat == nil || req.Lng == nil {
		s.handleDomainError(w, fmt.Errorf("%w: lat and lng are required", domain.ErrInvalidInput))
		return
	}
	d, err := record.ParseDomain(req.Domain)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	res, err := s.enrichment.Enrich(r.Context(), sess, *req.Lat, *req.Lng, d)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

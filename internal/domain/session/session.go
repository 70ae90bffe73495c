// Package session models the per-user interaction state: credential, active tab
// and pending route stops.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

// TabOverview is the landing tab; no domain tool is active there.
const TabOverview = "overview"

// RouteStopsRequired is the number of clicks that triggers a route solve.
const RouteStopsRequired = 2

// Session is the explicit interaction state of one user.
type Session struct {
	ID         string      `json:"id"`
	Credential string      `json:"credential,omitempty"`
	Label      string      `json:"label,omitempty"`
	ActiveTab  string      `json:"active_tab"`
	RouteStops []orb.Point `json:"route_stops,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// New creates an unauthenticated session on the overview tab.
func New(id string, now time.Time) *Session {
	return &Session{ID: id, ActiveTab: TabOverview, CreatedAt: now}
}

// Authenticated reports whether the session holds a backend credential.
func (s *Session) Authenticated() bool { return s.Credential != "" }

// SignIn stores a credential. The label defaults to "API Key".
func (s *Session) SignIn(credential, label string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return fmt.Errorf("%w: credential is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(label) == "" {
		label = "API Key"
	}
	s.Credential = credential
	s.Label = label
	return nil
}

// SignOut drops the credential and any pending route stops.
func (s *Session) SignOut() {
	s.Credential = ""
	s.Label = ""
	s.RouteStops = nil
}

// SwitchTab activates the overview or a domain tab.
func (s *Session) SwitchTab(tab string) error {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab != TabOverview {
		d, err := record.ParseDomain(tab)
		if err != nil {
			return err
		}
		tab = d.String()
	}
	s.ActiveTab = tab
	return nil
}

// OnTab reports whether the domain's tab is active.
func (s *Session) OnTab(d record.Domain) bool { return s.ActiveTab == d.String() }

// AddRouteStop appends a stop. Once enough stops are collected they are
// returned and the pending list is cleared, whatever the solve outcome.
func (s *Session) AddRouteStop(p orb.Point) ([]orb.Point, bool) {
	s.RouteStops = append(s.RouteStops, p)
	if len(s.RouteStops) < RouteStopsRequired {
		return nil, false
	}
	stops := s.RouteStops
	s.RouteStops = nil
	return stops, true
}

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/domain"
	"github.com/kailas-cloud/geolens/internal/domain/record"
)

func TestNew(t *testing.T) {
	s := New("s1", time.Unix(0, 0))
	if s.Authenticated() {
		t.Fatal("new session must be unauthenticated")
	}
	if s.ActiveTab != TabOverview {
		t.Fatalf("tab = %q", s.ActiveTab)
	}
}

func TestSignInOut(t *testing.T) {
	s := New("s1", time.Now())
	if err := s.SignIn("  ", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := s.SignIn("key-123", ""); err != nil {
		t.Fatal(err)
	}
	if !s.Authenticated() || s.Label != "API Key" {
		t.Fatalf("session = %+v", s)
	}
	s.AddRouteStop(orb.Point{1, 2})
	s.SignOut()
	if s.Authenticated() || len(s.RouteStops) != 0 {
		t.Fatalf("sign out left state: %+v", s)
	}
}

func TestSwitchTab(t *testing.T) {
	s := New("s1", time.Now())
	if err := s.SwitchTab("Cyber"); err != nil {
		t.Fatal(err)
	}
	if !s.OnTab(record.DomainCyber) || s.OnTab(record.DomainRx) {
		t.Fatalf("tab = %q", s.ActiveTab)
	}
	if err := s.SwitchTab("overview"); err != nil || s.ActiveTab != TabOverview {
		t.Fatalf("overview: %v %q", err, s.ActiveTab)
	}
	if err := s.SwitchTab("weather"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if s.ActiveTab != TabOverview {
		t.Fatal("failed switch must not change the tab")
	}
}

func TestAddRouteStop_TwoClicks(t *testing.T) {
	s := New("s1", time.Now())
	if stops, ready := s.AddRouteStop(orb.Point{-93.17, 44.8}); ready || stops != nil {
		t.Fatal("first click must only store the stop")
	}
	stops, ready := s.AddRouteStop(orb.Point{-96.75, 32.9})
	if !ready || len(stops) != 2 {
		t.Fatalf("second click: ready=%v stops=%v", ready, stops)
	}
	if len(s.RouteStops) != 0 {
		t.Fatal("stops must reset after the second click")
	}
	if _, ready := s.AddRouteStop(orb.Point{0, 0}); ready {
		t.Fatal("third click starts a new pair")
	}
}

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/kailas-cloud/geolens/internal/catalog"
	"github.com/kailas-cloud/geolens/internal/db/memory"
	"github.com/kailas-cloud/geolens/internal/domain"
	domdisp "github.com/kailas-cloud/geolens/internal/domain/display"
	"github.com/kailas-cloud/geolens/internal/domain/locator"
	domsess "github.com/kailas-cloud/geolens/internal/domain/session"
	displayrepo "github.com/kailas-cloud/geolens/internal/repository/display"
	sessionrepo "github.com/kailas-cloud/geolens/internal/repository/session"
	"github.com/kailas-cloud/geolens/internal/usecase/enrichment"
)

// --- Mocks ---

type mockBackend struct {
	candidate locator.Candidate
	route     locator.Route
	areas     []locator.ServiceArea
	err       error

	enrichCalls  int
	geocodeCalls int
	routeStops   [][]orb.Point
	lastFacility orb.Point
	lastBreaks   []float64
}

func (m *mockBackend) Enrich(context.Context, string, orb.Point, []string) (map[string]any, error) {
	m.enrichCalls++
	return nil, errors.New("unreachable")
}

func (m *mockBackend) Geocode(context.Context, string, string) (locator.Candidate, error) {
	m.geocodeCalls++
	return m.candidate, m.err
}

func (m *mockBackend) Route(_ context.Context, _ string, stops []orb.Point) (locator.Route, error) {
	m.routeStops = append(m.routeStops, stops)
	return m.route, m.err
}

func (m *mockBackend) ServiceArea(_ context.Context, _ string, f orb.Point, breaks []float64) ([]locator.ServiceArea, error) {
	m.lastFacility = f
	m.lastBreaks = breaks
	return m.areas, m.err
}

type fixture struct {
	svc      *Service
	backend  *mockBackend
	sessions *sessionrepo.Repo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	store := memory.NewStore()
	sessions := sessionrepo.New(store, "test:", time.Hour)
	board := displayrepo.New(store, "test:", time.Hour)
	backend := &mockBackend{}
	gw := enrichment.New(backend, cat.TapestrySegments())
	return &fixture{svc: New(gw, sessions, board, cat), backend: backend, sessions: sessions}
}

// session stores a session with the given tab and optional credential.
func (f *fixture) session(t *testing.T, tab, credential string) string {
	t.Helper()
	s := domsess.New("s1", time.Now())
	if err := s.SwitchTab(tab); err != nil {
		t.Fatal(err)
	}
	if credential != "" {
		if err := s.SignIn(credential, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.sessions.Save(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	return s.ID
}

func decode[T any](t *testing.T, e domdisp.Entry) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		t.Fatalf("decode entry data: %v", err)
	}
	return v
}

func (f *fixture) assertNothingPublished(t *testing.T, sid string, tool Tool) {
	t.Helper()
	if _, err := f.svc.Latest(context.Background(), sid, tool); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected nothing published for %s, got %v", tool, err)
	}
}

// --- Tests ---

func TestParseTool(t *testing.T) {
	for _, tool := range All() {
		got, err := ParseTool(" " + string(tool) + " ")
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %q, %v", tool, got, err)
		}
		if !tool.Domain().IsValid() {
			t.Errorf("tool %s has no domain", tool)
		}
	}
	if _, err := ParseTool("teleport"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLocate_PublishesPin(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "key")
	f.backend.candidate = locator.Candidate{
		Address:  "380 New York St, Redlands, California",
		Location: orb.Point{-117.1957, 34.0564},
		Score:    100,
		Type:     "PointAddress",
	}

	e, err := f.svc.Locate(context.Background(), sid, "380 New York St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != domdisp.StatusOK || e.Tool != "locate" {
		t.Fatalf("entry = %+v", e)
	}
	res := decode[LocateResult](t, e)
	if res.Type != "PointAddress" || res.Lat != 34.0564 {
		t.Errorf("result = %+v", res)
	}
	if len(e.Overlay.Features) != 1 || e.Overlay.Features[0].Properties["shape"] != "diamond" {
		t.Fatalf("overlay = %+v", e.Overlay.Features)
	}

	latest, err := f.svc.Latest(context.Background(), sid, ToolLocate)
	if err != nil || latest.Message != e.Message {
		t.Fatalf("latest = %+v, %v", latest, err)
	}
}

func TestLocate_UnauthenticatedIsNoOp(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "")

	_, err := f.svc.Locate(context.Background(), sid, "somewhere")
	if !errors.Is(err, domain.ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	if f.backend.geocodeCalls != 0 {
		t.Fatal("backend must not be called")
	}
	f.assertNothingPublished(t, sid, ToolLocate)
}

func TestLocate_EmptyAddress(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "key")

	if _, err := f.svc.Locate(context.Background(), sid, "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	f.assertNothingPublished(t, sid, ToolLocate)
}

func TestLocate_BackendErrorIsPublished(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "key")
	f.backend.err = domain.ErrNoResults

	e, err := f.svc.Locate(context.Background(), sid, "nowhere")
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	var se *domain.ServiceError
	if !errors.As(err, &se) || se.Op != "geocode" {
		t.Fatalf("expected geocode ServiceError, got %v", err)
	}
	if e.Status != domdisp.StatusError || e.Message == "" {
		t.Fatalf("entry = %+v", e)
	}
	latest, err := f.svc.Latest(context.Background(), sid, ToolLocate)
	if err != nil || latest.Status != domdisp.StatusError {
		t.Fatalf("latest = %+v, %v", latest, err)
	}
}

func TestEquity_WrongTabIsNoOp(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "overview", "")

	if _, err := f.svc.Equity(context.Background(), sid, 35.1, -90.0); !errors.Is(err, domain.ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	f.assertNothingPublished(t, sid, ToolEquity)
}

func TestEquity_UnauthenticatedIsSimulated(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "access", "")

	e, err := f.svc.Equity(context.Background(), sid, 35.1495, -90.049)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.backend.enrichCalls != 0 {
		t.Fatal("unauthenticated enrichment must not reach the backend")
	}
	data := decode[map[string]any](t, e)
	if data["provenance"] != "simulated" || data["reason"] != enrichment.ReasonUnauthenticated {
		t.Fatalf("data = %v", data)
	}
	if len(e.Overlay.Features) != 1 {
		t.Fatalf("expected one pin, got %d", len(e.Overlay.Features))
	}
}

func TestEquity_LiveFailureFallsBack(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "access", "key")

	e, err := f.svc.Equity(context.Background(), sid, 35.1495, -90.049)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.backend.enrichCalls != 1 {
		t.Fatalf("enrich calls = %d", f.backend.enrichCalls)
	}
	if data := decode[map[string]any](t, e); data["provenance"] != "simulated" {
		t.Fatalf("data = %v", data)
	}
}

func TestEquity_InvalidCoordinates(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "access", "")
	if _, err := f.svc.Equity(context.Background(), sid, 91, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMarket_Guards(t *testing.T) {
	f := newFixture(t)

	sid := f.session(t, "retention", "")
	if _, err := f.svc.Market(context.Background(), sid, 40, -100); !errors.Is(err, domain.ErrPreconditionNotMet) {
		t.Fatalf("unauthenticated: %v", err)
	}

	sid = f.session(t, "cyber", "key")
	if _, err := f.svc.Market(context.Background(), sid, 40, -100); !errors.Is(err, domain.ErrPreconditionNotMet) {
		t.Fatalf("wrong tab: %v", err)
	}
	f.assertNothingPublished(t, sid, ToolMarket)
}

func TestMarket_UsesMarketSchema(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "retention", "key")

	e, err := f.svc.Market(context.Background(), sid, 40, -100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := decode[map[string]any](t, e)
	if data["schema"] != "market" {
		t.Fatalf("schema = %v", data["schema"])
	}
	if e.Overlay != nil {
		t.Fatal("market enrichment draws no overlay")
	}
}

func TestAddRouteStop_TwoClickFlow(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "cyber", "key")
	f.backend.route = locator.Route{
		Path:    orb.LineString{{-93.2, 44.9}, {-93.1, 44.8}},
		Miles:   12.34,
		Minutes: 21.6,
		Steps:   9,
	}
	ctx := context.Background()

	first, err := f.svc.AddRouteStop(ctx, sid, 44.9, -93.2)
	if err != nil {
		t.Fatalf("first click: %v", err)
	}
	if got := decode[RouteResult](t, first); got.Stops != 1 {
		t.Fatalf("pending stops = %d", got.Stops)
	}
	sess, _ := f.sessions.Get(ctx, sid)
	if len(sess.RouteStops) != 1 {
		t.Fatalf("stored stops = %d", len(sess.RouteStops))
	}
	if len(f.backend.routeStops) != 0 {
		t.Fatal("route solved after one click")
	}

	second, err := f.svc.AddRouteStop(ctx, sid, 44.8, -93.1)
	if err != nil {
		t.Fatalf("second click: %v", err)
	}
	if len(f.backend.routeStops) != 1 || len(f.backend.routeStops[0]) != 2 {
		t.Fatalf("route calls = %v", f.backend.routeStops)
	}
	res := decode[RouteResult](t, second)
	if res.Miles != 12.34 || res.Steps != 9 {
		t.Errorf("result = %+v", res)
	}
	if second.Message != "12.3 miles | 22 min, 9 turn-by-turn steps" {
		t.Errorf("message = %q", second.Message)
	}
	// two stop markers and the route line
	if len(second.Overlay.Features) != 3 {
		t.Errorf("features = %d", len(second.Overlay.Features))
	}
	sess, _ = f.sessions.Get(ctx, sid)
	if len(sess.RouteStops) != 0 {
		t.Fatal("stops must reset after solving")
	}
}

func TestAddRouteStop_FailureResetsStops(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "cyber", "key")
	f.backend.err = errors.New("solve failed")
	ctx := context.Background()

	if _, err := f.svc.AddRouteStop(ctx, sid, 44.9, -93.2); err != nil {
		t.Fatalf("first click: %v", err)
	}
	if _, err := f.svc.AddRouteStop(ctx, sid, 44.8, -93.1); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	sess, _ := f.sessions.Get(ctx, sid)
	if len(sess.RouteStops) != 0 {
		t.Fatal("stops must reset after a failed solve")
	}
}

func TestAddRouteStop_WrongTabIsNoOp(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "key")

	if _, err := f.svc.AddRouteStop(context.Background(), sid, 44.9, -93.2); !errors.Is(err, domain.ErrPreconditionNotMet) {
		t.Fatalf("expected ErrPreconditionNotMet, got %v", err)
	}
	sess, _ := f.sessions.Get(context.Background(), sid)
	if len(sess.RouteStops) != 0 {
		t.Fatal("ignored click must not store a stop")
	}
}

func TestSearchProvider_NearestRegion(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "transparency", "key")
	f.backend.candidate = locator.Candidate{Address: "Hartford, CT", Location: orb.Point{-73.5, 41.5}, Score: 98}

	e, err := f.svc.SearchProvider(context.Background(), sid, "Hartford", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := decode[ProviderResult](t, e)
	if res.RegionID != "northeast" || res.Adequacy != 82 || res.Providers != 12400 {
		t.Fatalf("result = %+v", res)
	}
	if res.DistanceKm != 0 || res.Filter != "All Plans / All Specialties" {
		t.Errorf("distance/filter = %v / %q", res.DistanceKm, res.Filter)
	}
}

func TestSearchProvider_FilterNarrowsAdequacy(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "transparency", "key")
	f.backend.candidate = locator.Candidate{Address: "Hartford, CT", Location: orb.Point{-73.4, 41.6}}

	e, err := f.svc.SearchProvider(context.Background(), sid, "Hartford", "epo", "behavioral")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := decode[ProviderResult](t, e)
	// (78 + 65) / 2 = 71.5
	if res.Adequacy != 72 || res.Filter != "EPO / Behavioral" {
		t.Fatalf("result = %+v", res)
	}
	if res.DistanceKm <= 0 {
		t.Error("expected a positive distance")
	}
}

func TestSearchProvider_UnknownFilter(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "transparency", "key")

	if _, err := f.svc.SearchProvider(context.Background(), sid, "x", "pos", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if f.backend.geocodeCalls != 0 {
		t.Fatal("filters are validated before geocoding")
	}
}

func TestFindPharmacy(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "rx", "key")
	f.backend.candidate = locator.Candidate{Address: "Times Square", Location: orb.Point{-73.985, 40.758}}
	ring := orb.Ring{{-74, 40.7}, {-73.9, 40.7}, {-73.9, 40.8}, {-74, 40.7}}
	f.backend.areas = []locator.ServiceArea{
		{FromBreak: 0, ToBreak: 5, Polygon: orb.Polygon{ring}},
		{FromBreak: 5, ToBreak: 10, Polygon: orb.Polygon{ring}},
	}

	e, err := f.svc.FindPharmacy(context.Background(), sid, "Times Square")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := decode[PharmacyResult](t, e)
	if res.PharmacyID != "cvs-manhattan-ny" || res.AvgCopay != 12.5 || res.Desert || res.Zones != 2 {
		t.Fatalf("result = %+v", res)
	}
	if !f.backend.lastFacility.Equal(orb.Point{-73.98, 40.76}) {
		t.Errorf("facility = %v", f.backend.lastFacility)
	}
	if len(f.backend.lastBreaks) != 2 || f.backend.lastBreaks[0] != 5 || f.backend.lastBreaks[1] != 10 {
		t.Errorf("breaks = %v", f.backend.lastBreaks)
	}
	// address pin, two zones, pharmacy marker
	if len(e.Overlay.Features) != 4 {
		t.Fatalf("features = %d", len(e.Overlay.Features))
	}
	if e.Overlay.Features[1].Properties["fill"] != "rgba(76,175,80,0.25)" {
		t.Errorf("inner zone fill = %v", e.Overlay.Features[1].Properties["fill"])
	}
}

func TestUnknownSession(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Locate(context.Background(), "missing", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.Latest(context.Background(), "missing", ToolLocate); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublish_LastWriteWins(t *testing.T) {
	f := newFixture(t)
	sid := f.session(t, "fraud", "key")
	ctx := context.Background()

	f.backend.candidate = locator.Candidate{Address: "first", Location: orb.Point{-100, 40}}
	if _, err := f.svc.Locate(ctx, sid, "first"); err != nil {
		t.Fatal(err)
	}
	f.backend.candidate = locator.Candidate{Address: "second", Location: orb.Point{-101, 41}}
	if _, err := f.svc.Locate(ctx, sid, "second"); err != nil {
		t.Fatal(err)
	}

	latest, err := f.svc.Latest(ctx, sid, ToolLocate)
	if err != nil {
		t.Fatal(err)
	}
	if decode[LocateResult](t, latest).Address != "second" {
		t.Fatal("latest result must be the last published")
	}
}

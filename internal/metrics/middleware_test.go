package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/sessions/{id}/display/{tool}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a1", "b2", "c3"} {
		req := httptest.NewRequest("GET", "/sessions/"+id+"/display/route", http.NoBody)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/sessions/{id}/display/{tool}", "200"))
	if got < 3 {
		t.Errorf("expected 3 requests under one pattern label, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected duration observations")
	}
	if v := testutil.ToFloat64(httpRequestsInFlight); v != 0 {
		t.Errorf("in-flight gauge must return to 0, got %f", v)
	}
}

func TestMiddleware_StatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/overlays/{domain}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "domain") == "weather" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("{}"))
	})
	r.Post("/sessions/{id}/tools/{tool}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		method, path, pattern, status string
	}{
		{"GET", "/overlays/fraud", "/overlays/{domain}", "200"},
		{"GET", "/overlays/weather", "/overlays/{domain}", "400"},
		{"POST", "/sessions/s1/tools/route", "/sessions/{id}/tools/{tool}", "204"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, http.NoBody))
			if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.method, tc.pattern, tc.status)); v < 1 {
				t.Errorf("expected requests_total for %s %s >= 1, got %f", tc.method, tc.status, v)
			}
		})
	}
}

func TestMiddleware_ToolCalls(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware("locate", "route"))
	r.Post("/sessions/{id}/tools/{tool}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "tool") == "teleport" {
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	r.Get("/sessions/{id}/display/{tool}", func(w http.ResponseWriter, r *http.Request) {})
	r.Handle("/metrics", Handler())

	before := testutil.ToFloat64(toolCallsTotal.WithLabelValues("route", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/sessions/s1/tools/route", http.NoBody))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/sessions/s1/display/route", http.NoBody))
	if got := testutil.ToFloat64(toolCallsTotal.WithLabelValues("route", "200")) - before; got != 1 {
		t.Errorf("route tool calls = %f, want 1 (display reads are not tool calls)", got)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/sessions/s1/tools/teleport", http.NoBody))
	if v := testutil.ToFloat64(toolCallsTotal.WithLabelValues("unknown", "400")); v < 1 {
		t.Errorf("unknown tool calls = %f, want >= 1", v)
	}

	scrapes := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/metrics", http.NoBody))
	if v := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200")); v != scrapes {
		t.Errorf("scrapes must not be counted, got %f", v)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "unmatched"},
		{"/overlays/{domain}", "/overlays/{domain}"},
		{"/health", "/health"},
	}
	for _, tc := range tests {
		if got := normalizePath(tc.input); got != tc.expected {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestHandler_ExposesNamespace(t *testing.T) {
	RegisterBackendMetrics()
	RegisterOverlayMetrics()
	RegisterBackendMetrics() // idempotent

	BackendRequestsTotal.WithLabelValues("geocode", "success").Inc()
	OverlayBuildsTotal.WithLabelValues("fraud").Inc()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))
	body, _ := io.ReadAll(rr.Body)
	for _, name := range []string{
		"geolens_backend_requests_total",
		"geolens_overlay_builds_total",
		"geolens_http_requests_in_flight",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestStatusWriter_FirstHeaderWins(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &statusWriter{ResponseWriter: rr, status: http.StatusOK}
	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	if w.status != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.status)
	}
}

package geolens

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/geolens/internal/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, statusOK},
		{fmt.Errorf("locate: %w", domain.ErrPreconditionNotMet), statusIgnored},
		{domain.NewServiceError("geocode", errors.New("boom")), statusError},
		{domain.ErrInvalidInput, statusError},
	}
	for _, tc := range tests {
		if got := statusOf(tc.err); got != tc.want {
			t.Errorf("statusOf(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestObserver_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("tool.locate", time.Now(), nil)
	obs.observe("tool.locate", time.Now(), domain.ErrPreconditionNotMet)

	if v := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("tool.locate", statusOK)); v != 1 {
		t.Errorf("ok = %f", v)
	}
	if v := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("tool.locate", statusIgnored)); v != 1 {
		t.Errorf("ignored = %f", v)
	}
}

func TestObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second observer: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected the existing collector to be reused")
	}
}

func TestObserver_Nil(t *testing.T) {
	var obs *observer
	obs.observe("ping", time.Now(), nil) // must not panic
}

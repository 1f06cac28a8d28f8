package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestScheduleMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewScheduleMetrics(reg)

	m.ObserveRequest("import", "ok")
	m.ObserveRequest("import", "ok")
	m.ObserveRecords(3, 1)
	m.ObserveDiscarded(1, 0, 2, 0)
	m.ObserveCompletion("nvidia", nil, 2*time.Second)
	m.ObserveCompletion("nvidia", context.DeadlineExceeded, time.Minute)
	m.ObserveCompletion("gemini", errors.New("boom"), time.Second)

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("import", "ok")); got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.recordsTotal.WithLabelValues("created")); got != 3 {
		t.Errorf("created = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.discardedTotal.WithLabelValues("dropped_slot")); got != 2 {
		t.Errorf("dropped = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(m.providerLatency); got != 3 {
		t.Errorf("latency series = %d, want 3", got)
	}
}

func TestScheduleMetricsDefaultRegistry(t *testing.T) {
	m := NewScheduleMetrics(nil)
	m.ObserveRequest("preview", "empty")
}

func TestScheduleMetricsNilSafe(t *testing.T) {
	var m *ScheduleMetrics
	m.ObserveRequest("import", "ok")
	m.ObserveRecords(1, 1)
	m.ObserveDiscarded(1, 1, 1, 1)
	m.ObserveCompletion("nvidia", nil, time.Second)
}

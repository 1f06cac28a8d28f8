package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"zenned/pkg/llmprovider"
)

const namespace = "zenned"

// ScheduleMetrics exposes counters and histograms for AI schedule imports.
type ScheduleMetrics struct {
	requestsTotal   *prometheus.CounterVec
	recordsTotal    *prometheus.CounterVec
	discardedTotal  *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
}

func NewScheduleMetrics(reg prometheus.Registerer) *ScheduleMetrics {
	m := &ScheduleMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "requests_total",
			Help:      "Schedule import and preview requests by outcome",
		}, []string{"mode", "outcome"}),
		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "records_total",
			Help:      "Parsed schedule records by persistence status",
		}, []string{"status"}),
		discardedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "discarded_total",
			Help:      "Lines and slots the schedule parser discarded",
		}, []string{"reason"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "completion_seconds",
			Help:      "Latency of completion attempts per provider",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		}, []string{"provider", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.recordsTotal, m.discardedTotal, m.providerLatency)
	return m
}

// ObserveRequest counts one import or preview by outcome ("ok", "partial",
// "bad_request", "config", "upstream", "timeout", "empty").
func (m *ScheduleMetrics) ObserveRequest(mode, outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(mode, outcome).Inc()
}

func (m *ScheduleMetrics) ObserveRecords(created, failed int) {
	if m == nil {
		return
	}
	m.recordsTotal.WithLabelValues("created").Add(float64(created))
	m.recordsTotal.WithLabelValues("failed").Add(float64(failed))
}

func (m *ScheduleMetrics) ObserveDiscarded(skippedLines, emptyDays, dropped, truncated int) {
	if m == nil {
		return
	}
	m.discardedTotal.WithLabelValues("skipped_line").Add(float64(skippedLines))
	m.discardedTotal.WithLabelValues("empty_day").Add(float64(emptyDays))
	m.discardedTotal.WithLabelValues("dropped_slot").Add(float64(dropped))
	m.discardedTotal.WithLabelValues("truncated_slot").Add(float64(truncated))
}

// ObserveCompletion implements llmprovider.Observer.
func (m *ScheduleMetrics) ObserveCompletion(provider string, err error, latency time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	switch {
	case err == nil:
	case llmprovider.IsTimeout(err):
		status = "timeout"
	default:
		status = "error"
	}
	m.providerLatency.WithLabelValues(provider, status).Observe(latency.Seconds())
}

var _ llmprovider.Observer = (*ScheduleMetrics)(nil)

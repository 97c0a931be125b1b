// Package metrics exposes prometheus collectors for the batch widget.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	linkLookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "batchview",
		Subsystem: "link_resolver",
		Name:      "lookups_total",
		Help:      "Count of batch link lookups by outcome.",
	}, []string{"status"})

	linkLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "batchview",
		Subsystem: "link_resolver",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a single batch link lookup.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	linkResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "batchview",
		Subsystem: "link_resolver",
		Name:      "resolve_duration_seconds",
		Help:      "Time from resolver start until a link was found.",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600, 1200},
	})

	linkResolveTicks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "batchview",
		Subsystem: "link_resolver",
		Name:      "resolve_ticks",
		Help:      "Number of polling ticks until a link was found.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	countdownStoppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "batchview",
		Subsystem: "countdown",
		Name:      "untrackable_total",
		Help:      "Count of countdowns stopped because the batch left its solving epoch.",
	})

	activeTasks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "batchview",
		Subsystem: "view",
		Name:      "active_tasks",
		Help:      "Number of running polling tasks by kind.",
	}, []string{"kind"})
)

// View tracks metrics of widget polling loops.
type View struct{}

// NewView constructs a View metrics collector.
func NewView() *View {
	return &View{}
}

// ObserveLookup records one lookup attempt.
func (View) ObserveLookup(err error, found bool, started time.Time) {
	status := "not_found"
	switch {
	case err != nil:
		status = "error"
	case found:
		status = "found"
	}
	linkLookupTotal.WithLabelValues(status).Inc()
	linkLookupDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveResolved records how long a resolver polled before finding a link.
func (View) ObserveResolved(ticks uint64, started time.Time) {
	linkResolveDuration.Observe(time.Since(started).Seconds())
	linkResolveTicks.Observe(float64(ticks))
}

// ObserveCountdownStopped records a countdown reaching an untrackable batch.
func (View) ObserveCountdownStopped() {
	countdownStoppedTotal.Inc()
}

// TaskStarted increments the running task gauge.
func (View) TaskStarted(kind string) {
	activeTasks.WithLabelValues(kind).Inc()
}

// TaskStopped decrements the running task gauge.
func (View) TaskStopped(kind string) {
	activeTasks.WithLabelValues(kind).Dec()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "batchview",
		Subsystem: "lookup_client",
		Name:      "operations_total",
		Help:      "Count of remote lookup operations.",
	}, []string{"operation", "status"})
	lookupClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "batchview",
		Subsystem: "lookup_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of remote lookup operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// LookupClient tracks metrics for remote link lookups.
type LookupClient struct{}

// NewLookupClient constructs a LookupClient metrics collector.
func NewLookupClient() *LookupClient {
	return &LookupClient{}
}

// Observe records a single remote call outcome and duration.
func (LookupClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	lookupClientRequestsTotal.WithLabelValues(operation, status).Inc()
	lookupClientRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

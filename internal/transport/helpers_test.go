package transport

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
	"github.com/goodnatureofminers/batchview/internal/view"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testInterval = 2 * time.Millisecond
	waitFor      = 2 * time.Second
)

var testViewOptions = view.Options{
	LinkInterval:      testInterval,
	CountdownInterval: testInterval,
	EpochSeconds:      300,
	TxURL:             "https://etherscan.io/tx/",
}

type lookupFunc func(ctx context.Context, batch model.Batch) (string, error)

func (f lookupFunc) ResolveBatchLink(ctx context.Context, batch model.Batch) (string, error) {
	return f(ctx, batch)
}

func noLink(context.Context, model.Batch) (string, error) { return "", nil }

// taskMetrics counts running view tasks.
type taskMetrics struct {
	mu      sync.Mutex
	running int
}

func (m *taskMetrics) ObserveLookup(error, bool, time.Time) {}
func (m *taskMetrics) ObserveResolved(uint64, time.Time)    {}
func (m *taskMetrics) ObserveCountdownStopped()              {}

func (m *taskMetrics) TaskStarted(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running++
}

func (m *taskMetrics) TaskStopped(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running--
}

func (m *taskMetrics) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func newTestServer(t *testing.T, h *BatchHandler) *httptest.Server {
	t.Helper()
	mux := gwruntime.NewServeMux()
	require.NoError(t, h.Register(mux))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestHandler(t *testing.T, solutions SolutionSource, clock EpochClock, lookup view.LinkLookup, metrics view.Metrics) *BatchHandler {
	t.Helper()
	h, err := NewBatchHandler(solutions, clock, lookup, metrics, zap.NewNop(), HandlerOptions{
		View:              testViewOptions,
		SolutionsInterval: 5 * time.Millisecond,
		OverviewWorkers:   2,
		OverviewLimit:     10,
	})
	require.NoError(t, err)
	return h
}

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
	"github.com/goodnatureofminers/batchview/internal/view"
	"github.com/goodnatureofminers/batchview/pkg/workerpool"
	"github.com/gorilla/websocket"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const currentBatch = "current"

// HandlerOptions tunes the batch endpoints.
type HandlerOptions struct {
	View view.Options
	// SolutionsInterval is how often a stream re-reads the solutions of its batch.
	SolutionsInterval time.Duration
	OverviewWorkers   int
	OverviewLimit     int
}

// BatchHandler serves batch snapshots, the widget page and live streams.
type BatchHandler struct {
	solutions SolutionSource
	clock     EpochClock
	lookup    view.LinkLookup
	metrics   view.Metrics
	opts      HandlerOptions
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewBatchHandler returns a BatchHandler. solutions may be nil, every batch
// is then shown as pending.
func NewBatchHandler(
	solutions SolutionSource,
	clock EpochClock,
	lookup view.LinkLookup,
	metrics view.Metrics,
	logger *zap.Logger,
	opts HandlerOptions,
) (*BatchHandler, error) {
	if clock == nil {
		return nil, errors.New("epoch clock is required")
	}
	if lookup == nil {
		return nil, errors.New("link lookup is required")
	}
	if metrics == nil {
		return nil, errors.New("view metrics is required")
	}
	if opts.SolutionsInterval <= 0 {
		return nil, errors.New("solutions interval must be positive")
	}
	if opts.OverviewWorkers <= 0 {
		opts.OverviewWorkers = 4
	}
	if opts.OverviewLimit <= 0 {
		opts.OverviewLimit = 50
	}
	return &BatchHandler{
		solutions: solutions,
		clock:     clock,
		lookup:    lookup,
		metrics:   metrics,
		opts:      opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}, nil
}

// Register mounts the endpoints on mux.
func (h *BatchHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/batches", h.overview},
		{http.MethodGet, "/v1/batches/{batch}", h.snapshot},
		{http.MethodGet, "/v1/batches/{batch}/stream", h.stream},
		{http.MethodGet, "/batches/{batch}", h.page},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func (h *BatchHandler) snapshot(w http.ResponseWriter, r *http.Request, params map[string]string) {
	batch, err := h.parseBatch(params["batch"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	snapshot, err := h.sample(r.Context(), batch)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type overviewResponse struct {
	Current model.Batch     `json:"current"`
	Batches []view.Snapshot `json:"batches"`
}

func (h *BatchHandler) overview(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	current := h.clock.Current()
	from, to, err := h.parseRange(r, current)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	batches := make([]model.Batch, 0, to-from+1)
	for i := model.Batch(0); i <= to-from; i++ {
		batches = append(batches, from+i)
	}

	snapshots, err := workerpool.Map(r.Context(), h.opts.OverviewWorkers, batches, h.sample)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{Current: current, Batches: snapshots})
}

func (h *BatchHandler) page(w http.ResponseWriter, r *http.Request, params map[string]string) {
	batch, err := h.parseBatch(params["batch"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snapshot, err := h.sample(r.Context(), batch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	widget, err := renderWidget(snapshot)
	if err != nil {
		h.logger.Error("render widget", zap.Uint64("batch", uint64(batch)), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{
		Batch:  batch,
		Widget: template.HTML(widget),
		Stream: fmt.Sprintf("/v1/batches/%d/stream", batch),
	}); err != nil {
		h.logger.Warn("write page", zap.Error(err))
	}
}

// sample builds a one-off snapshot. Lookup failures only leave the link empty.
func (h *BatchHandler) sample(ctx context.Context, batch model.Batch) (view.Snapshot, error) {
	solutions, err := h.loadSolutions(ctx, batch)
	if err != nil {
		return view.Snapshot{}, err
	}
	snapshot, err := view.Sample(ctx, batch, solutions, h.lookup, h.clock, h.opts.View)
	if err != nil {
		h.logger.Warn("batch link lookup failed", zap.Uint64("batch", uint64(batch)), zap.Error(err))
	}
	return snapshot, nil
}

func (h *BatchHandler) loadSolutions(ctx context.Context, batch model.Batch) (model.Solutions, error) {
	if h.solutions == nil {
		return nil, nil
	}
	solutions, err := h.solutions.Solutions(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("load batch %d solutions: %w", batch, err)
	}
	return solutions, nil
}

func (h *BatchHandler) newView(batch model.Batch, solutions model.Solutions) (*view.BatchView, error) {
	return view.New(batch, solutions, h.lookup, h.clock, h.metrics, h.logger, h.opts.View)
}

func (h *BatchHandler) parseBatch(raw string) (model.Batch, error) {
	if raw == currentBatch {
		return h.clock.Current(), nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid batch %q", raw)
	}
	return model.Batch(n), nil
}

func (h *BatchHandler) parseRange(r *http.Request, current model.Batch) (model.Batch, model.Batch, error) {
	query := r.URL.Query()

	to := current
	if raw := query.Get("to"); raw != "" {
		b, err := h.parseBatch(raw)
		if err != nil {
			return 0, 0, err
		}
		to = b
	}

	limit := model.Batch(h.opts.OverviewLimit)
	from := model.Batch(0)
	if to >= limit {
		from = to - limit + 1
	}
	if raw := query.Get("from"); raw != "" {
		b, err := h.parseBatch(raw)
		if err != nil {
			return 0, 0, err
		}
		from = b
	}

	if from > to {
		return 0, 0, fmt.Errorf("from %d is after to %d", from, to)
	}
	if to-from >= limit {
		return 0, 0, fmt.Errorf("range exceeds %d batches", limit)
	}
	return from, to, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func renderWidget(s view.Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := view.Render(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

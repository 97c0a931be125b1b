package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/batchview/internal/clock"
	"github.com/goodnatureofminers/batchview/internal/model"
	"github.com/goodnatureofminers/batchview/internal/view"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeTimeout   = 10 * time.Second
	maxMessageSize = 1024
)

// streamFrame is pushed to the client after every change.
type streamFrame struct {
	Snapshot *view.Snapshot `json:"snapshot,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// showRequest asks the session to display another batch.
type showRequest struct {
	Batch *model.Batch `json:"batch"`
}

func (h *BatchHandler) stream(w http.ResponseWriter, r *http.Request, params map[string]string) {
	batch, err := h.parseBatch(params["batch"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s := &session{
		handler: h,
		conn:    conn,
		batch:   batch,
		logger:  h.logger.With(zap.String("remote", r.RemoteAddr)),
	}
	s.run(r.Context())
}

// session owns one view host for the lifetime of a websocket connection.
type session struct {
	handler *BatchHandler
	conn    *websocket.Conn
	batch   model.Batch
	logger  *zap.Logger
}

func (s *session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	host := view.NewHost(ctx, s.handler.newView)

	var wg sync.WaitGroup
	defer func() {
		cancel()
		_ = s.conn.Close()
		wg.Wait()
		host.Close()
	}()

	requests := make(chan model.Batch)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		s.read(ctx, requests)
	}()

	refresh := make(chan struct{}, 1)
	refresher := clock.Every(ctx, s.handler.opts.SolutionsInterval, func(context.Context, *clock.Task) {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})
	defer refresher.Close()

	current, err := s.show(ctx, host, s.batch, nil)
	if err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case batch := <-requests:
			s.batch = batch
			if current, err = s.show(ctx, host, batch, nil); err != nil {
				return
			}

		case <-refresh:
			solutions, err := s.handler.loadSolutions(ctx, s.batch)
			if err != nil {
				s.logger.Warn("refresh solutions failed", zap.Uint64("batch", uint64(s.batch)), zap.Error(err))
				continue
			}
			if current, err = s.mount(host, s.batch, solutions, current); err != nil {
				return
			}

		case <-current.Changes():
			if err := s.push(current.Snapshot()); err != nil {
				return
			}
		}
	}
}

// show loads solutions for batch and mounts it. A nil previous always pushes a frame.
func (s *session) show(ctx context.Context, host *view.Host, batch model.Batch, previous *view.BatchView) (*view.BatchView, error) {
	solutions, err := s.handler.loadSolutions(ctx, batch)
	if err != nil {
		s.logger.Warn("load solutions failed", zap.Uint64("batch", uint64(batch)), zap.Error(err))
	}
	return s.mount(host, batch, solutions, previous)
}

// mount hands batch to the host and pushes a frame unless the previous view was kept.
func (s *session) mount(host *view.Host, batch model.Batch, solutions model.Solutions, previous *view.BatchView) (*view.BatchView, error) {
	v, err := host.Show(batch, solutions)
	if err != nil {
		s.logger.Error("show batch", zap.Uint64("batch", uint64(batch)), zap.Error(err))
		_ = s.write(streamFrame{Error: "batch unavailable"})
		return nil, err
	}
	if v == previous {
		return v, nil
	}
	if err := s.push(v.Snapshot()); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *session) read(ctx context.Context, requests chan<- model.Batch) {
	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("stream read ended", zap.Error(err))
			}
			return
		}

		var req showRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Batch == nil {
			s.logger.Debug("ignoring stream message", zap.ByteString("message", data))
			continue
		}
		select {
		case requests <- *req.Batch:
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) push(snapshot view.Snapshot) error {
	html, err := renderWidget(snapshot)
	if err != nil {
		s.logger.Error("render widget", zap.Error(err))
	}
	return s.write(streamFrame{Snapshot: &snapshot, HTML: html})
}

func (s *session) write(frame streamFrame) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(frame); err != nil {
		s.logger.Debug("stream write failed", zap.Error(err))
		return err
	}
	return nil
}

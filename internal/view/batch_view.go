// Package view implements the batch status widget: a link resolver and a
// countdown polled in the background, composed into a renderable snapshot.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
	"go.uber.org/zap"
)

// PanelKind selects what the widget shows next to the batch label.
type PanelKind string

const (
	PanelCountdown  PanelKind = "countdown"
	PanelNoSolution PanelKind = "no_solution"
	PanelSolution   PanelKind = "solution"
)

const noSolutionText = "No Solution"

// Options configures a BatchView.
type Options struct {
	LinkInterval      time.Duration
	CountdownInterval time.Duration
	// EpochSeconds is the batch duration used for the progress fraction.
	EpochSeconds int64
	// TxURL prefixes a transaction hash to build its explorer link.
	TxURL string
}

// Panel is the secondary part of the widget.
type Panel struct {
	Kind      PanelKind  `json:"kind"`
	Text      string     `json:"text,omitempty"`
	Countdown *Countdown `json:"countdown,omitempty"`
	Solver    string     `json:"solver,omitempty"`
	TxURL     string     `json:"tx_url,omitempty"`
	TxLabel   string     `json:"tx_label,omitempty"`
}

// Snapshot is everything needed to render the widget once.
type Snapshot struct {
	Batch model.Batch `json:"batch"`
	Label string      `json:"label"`
	Link  string      `json:"link,omitempty"`
	Panel Panel       `json:"panel"`
}

// BatchView composes the link resolver with either a countdown or the solution.
// The panel is chosen once from the solutions given at construction.
type BatchView struct {
	batch     model.Batch
	solutions model.Solutions
	panel     Panel
	opts      Options
	logger    *zap.Logger

	link      *LinkResolver
	countdown *CountdownTimer
	changes   chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

// New builds a BatchView. Nothing polls until Start.
func New(
	batch model.Batch,
	solutions model.Solutions,
	lookup LinkLookup,
	remaining RemainingTime,
	metrics Metrics,
	logger *zap.Logger,
	opts Options,
) (*BatchView, error) {
	if lookup == nil {
		return nil, errors.New("link lookup is required")
	}
	if metrics == nil {
		return nil, errors.New("view metrics is required")
	}
	if opts.LinkInterval <= 0 || opts.CountdownInterval <= 0 {
		return nil, errors.New("polling intervals must be positive")
	}

	logger = logger.With(zap.Uint64("batch", uint64(batch)))
	v := &BatchView{
		batch:     batch,
		solutions: solutions,
		panel:     selectPanel(solutions, opts.TxURL),
		opts:      opts,
		logger:    logger,
		changes:   make(chan struct{}, 1),
	}
	v.link = NewLinkResolver(batch, lookup, metrics, logger.Named("linkResolver"), v.notify)

	if v.panel.Kind == PanelCountdown {
		if remaining == nil {
			return nil, errors.New("remaining time is required for a pending batch")
		}
		if opts.EpochSeconds <= 0 {
			return nil, errors.New("epoch duration must be positive")
		}
		v.countdown = NewCountdownTimer(batch, remaining, opts.EpochSeconds, metrics, logger.Named("countdown"), v.notify)
	}
	return v, nil
}

// Start launches the polling loops. Later calls are ignored.
func (v *BatchView) Start(ctx context.Context) {
	v.startOnce.Do(func() {
		v.link.Start(ctx, v.opts.LinkInterval)
		if v.countdown != nil {
			v.countdown.Start(ctx, v.opts.CountdownInterval)
		}
	})
}

// Close stops both loops and waits for them. The view must not be restarted.
func (v *BatchView) Close() {
	v.closeOnce.Do(func() {
		v.link.Close()
		if v.countdown != nil {
			v.countdown.Close()
		}
		v.logger.Debug("batch view closed")
	})
}

// Batch returns the displayed batch.
func (v *BatchView) Batch() model.Batch {
	return v.batch
}

// Solutions returns the solutions the view was built with.
func (v *BatchView) Solutions() model.Solutions {
	return v.solutions
}

// Changes receives a value whenever the snapshot may have changed.
// Notifications are coalesced, consumers should read Snapshot after each one.
func (v *BatchView) Changes() <-chan struct{} {
	return v.changes
}

// Snapshot returns the current display state.
func (v *BatchView) Snapshot() Snapshot {
	panel := v.panel
	if v.countdown != nil {
		state := v.countdown.State()
		panel.Countdown = &state
	}
	return Snapshot{
		Batch: v.batch,
		Label: fmt.Sprintf("Batch #%d:", v.batch),
		Link:  v.link.Link(),
		Panel: panel,
	}
}

func (v *BatchView) notify() {
	select {
	case v.changes <- struct{}{}:
	default:
	}
}

func selectPanel(solutions model.Solutions, txURL string) Panel {
	if !solutions.Known() {
		return Panel{Kind: PanelCountdown}
	}
	first, ok := solutions.First()
	if !ok {
		return Panel{Kind: PanelNoSolution, Text: noSolutionText}
	}
	return Panel{
		Kind:    PanelSolution,
		Solver:  first.Solver.Hex(),
		TxURL:   txURL + first.TxHash,
		TxLabel: FormatTx(first.TxHash),
	}
}

package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/batchview/internal/model"
)

// Sample builds a snapshot from a single lookup and a single countdown sample,
// without starting any loop. A failed lookup leaves the link empty and is returned.
func Sample(
	ctx context.Context,
	batch model.Batch,
	solutions model.Solutions,
	lookup LinkLookup,
	remaining RemainingTime,
	opts Options,
) (Snapshot, error) {
	if lookup == nil {
		return Snapshot{}, errors.New("link lookup is required")
	}

	panel := selectPanel(solutions, opts.TxURL)
	if panel.Kind == PanelCountdown {
		state := Countdown{}
		if remaining != nil && opts.EpochSeconds > 0 {
			if sample, ok := remaining.Remaining(batch); ok {
				state = countdownState(sample, opts.EpochSeconds)
			}
		}
		panel.Countdown = &state
	}

	snapshot := Snapshot{
		Batch: batch,
		Label: fmt.Sprintf("Batch #%d:", batch),
		Panel: panel,
	}

	link, err := lookup.ResolveBatchLink(ctx, batch)
	if err != nil {
		return snapshot, fmt.Errorf("resolve batch %d link: %w", batch, err)
	}
	snapshot.Link = link
	return snapshot, nil
}

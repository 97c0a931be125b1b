package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/batchview/internal/model"
)

const (
	batchOutcomeQuery = `
SELECT count() AS closed
FROM batch_outcomes
WHERE batch = ?`

	batchSolutionsQuery = `
SELECT solver, tx_hash
FROM batch_solutions FINAL
WHERE batch = ?
ORDER BY position`
)

// Solutions returns nil while the batch has no outcome, and a non-nil
// (possibly empty) list once it was closed.
func (r *Repository) Solutions(ctx context.Context, batch model.Batch) (solutions model.Solutions, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("solutions", err, start)
	}()

	closed, err := r.batchClosed(ctx, batch)
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, batchSolutionsQuery, uint64(batch))
	if err != nil {
		return nil, fmt.Errorf("query batch solutions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	solutions = model.Solutions{}
	for rows.Next() {
		var solver, txHash string
		if err = rows.Scan(&solver, &txHash); err != nil {
			return nil, fmt.Errorf("scan batch solution: %w", err)
		}
		if !common.IsHexAddress(solver) {
			err = fmt.Errorf("batch %d: invalid solver address %q", batch, solver)
			return nil, err
		}
		solutions = append(solutions, model.Solution{
			Solver: common.HexToAddress(solver),
			TxHash: txHash,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batch solutions: %w", err)
	}

	return solutions, nil
}

func (r *Repository) batchClosed(ctx context.Context, batch model.Batch) (closed bool, err error) {
	rows, err := r.conn.Query(ctx, batchOutcomeQuery, uint64(batch))
	if err != nil {
		return false, fmt.Errorf("query batch outcome: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return false, fmt.Errorf("batch outcome count not returned")
	}
	var count uint64
	if err = rows.Scan(&count); err != nil {
		return false, fmt.Errorf("scan batch outcome: %w", err)
	}
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate batch outcome: %w", err)
	}
	return count > 0, nil
}

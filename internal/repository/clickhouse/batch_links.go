package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/batchview/internal/model"
)

const (
	batchLinkQuery = `
SELECT url
FROM batch_links
WHERE batch = ?
ORDER BY resolved_at
LIMIT 1`

	insertBatchLinksQuery = `
INSERT INTO batch_links (
	batch,
	url,
	resolved_at
) VALUES`
)

// BatchLink returns the stored link for a batch or "" if none was stored.
func (r *Repository) BatchLink(ctx context.Context, batch model.Batch) (link string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("batch_link", err, start)
	}()

	rows, err := r.conn.Query(ctx, batchLinkQuery, uint64(batch))
	if err != nil {
		return "", fmt.Errorf("query batch link: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if rows.Next() {
		if err = rows.Scan(&link); err != nil {
			return "", fmt.Errorf("scan batch link: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return "", fmt.Errorf("iterate batch link: %w", err)
	}
	return link, nil
}

// InsertBatchLinks stores resolved links.
func (r *Repository) InsertBatchLinks(ctx context.Context, links []model.BatchLink) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_batch_links", err, start)
	}()

	if len(links) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBatchLinksQuery)
	if err != nil {
		return fmt.Errorf("prepare batch links: %w", err)
	}

	for _, link := range links {
		if err = batch.Append(uint64(link.Batch), link.URL, link.ResolvedAt.UTC()); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append batch link %d: %w", link.Batch, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert batch links: %w", err)
	}
	return nil
}

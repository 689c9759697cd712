package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxGeneration returns the highest chain generation archived for nodeID, or 0.
func (r *Repository) MaxGeneration(ctx context.Context, nodeID string) (generation uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_generation", nodeID, err, start)
	}()

	const query = `
SELECT coalesce(max(generation), toUInt64(0)) AS max_generation
FROM ledger_blocks
WHERE node_id = ?`

	rows, err := r.conn.Query(ctx, query, nodeID)
	if err != nil {
		return 0, fmt.Errorf("query max generation: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max generation not found")
	}
	if err = rows.Scan(&generation); err != nil {
		return 0, fmt.Errorf("scan max generation: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max generation: %w", err)
	}
	return generation, nil
}

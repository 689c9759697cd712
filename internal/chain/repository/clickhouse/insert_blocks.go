package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

// InsertBlocks stores archived block rows.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.ArchivedBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", firstNode(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_blocks (
	node_id,
	generation,
	block_index,
	hash,
	previous_hash,
	proof,
	timestamp,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.NodeID,
			block.Generation,
			block.Index,
			block.Hash,
			block.PreviousHash,
			block.Proof,
			block.Timestamp,
			block.TXCount,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

func firstNode[T any](items []T) string {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.ArchivedBlock:
		return v.NodeID
	case model.ArchivedTransaction:
		return v.NodeID
	default:
		return ""
	}
}

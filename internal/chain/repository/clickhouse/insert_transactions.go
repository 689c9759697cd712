package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

// InsertTransactions stores archived transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.ArchivedTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstNode(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO ledger_transactions (
	node_id,
	generation,
	block_index,
	position,
	sender,
	recipient,
	amount
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.NodeID,
			tx.Generation,
			tx.BlockIndex,
			tx.Position,
			tx.Sender,
			tx.Recipient,
			tx.Amount,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

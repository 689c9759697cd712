package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/powledger/internal/chain/hashing"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"github.com/goodnatureofminers/powledger/pkg/batcher"
	"github.com/goodnatureofminers/powledger/pkg/safe"
	"go.uber.org/zap"
)

// ArchiveWriter streams sealed blocks to an ArchiveRepository. Every chain
// replacement opens a new generation so rows of a discarded fork stay
// distinguishable from the adopted chain.
type ArchiveWriter struct {
	nodeID       string
	repo         ArchiveRepository
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[model.ArchiveBlock]

	mu         sync.Mutex
	generation uint64
}

// NewArchiveWriter continues after the highest generation the repository holds for nodeID.
func NewArchiveWriter(ctx context.Context, nodeID string, repo ArchiveRepository, logger *zap.Logger) (*ArchiveWriter, error) {
	last, err := repo.MaxGeneration(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("load archive generation: %w", err)
	}
	w := newArchiveWriter(nodeID, repo, logger)
	w.generation = last + 1
	w.logger.Info("archive generation opened", zap.Uint64("generation", w.generation))
	return w, nil
}

func newArchiveWriter(nodeID string, repo ArchiveRepository, logger *zap.Logger) *ArchiveWriter {
	w := &ArchiveWriter{
		nodeID: nodeID,
		repo:   repo,
		logger: logger,
	}
	w.blockBatcher = batcher.New[model.ArchiveBlock](
		logger.Named("blockBatcher"),
		w.flush,
		archiveBatcherCapacity,
		archiveBatcherFlushInterval,
		archiveBatcherRPS,
	)
	return w
}

func (w *ArchiveWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

func (w *ArchiveWriter) Stop() {
	w.blockBatcher.Stop()
}

// Generation returns the generation new blocks are written under.
func (w *ArchiveWriter) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generation
}

// ArchiveBlock queues a freshly sealed block under the current generation.
func (w *ArchiveWriter) ArchiveBlock(ctx context.Context, block model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	generation := w.generation
	w.mu.Unlock()

	row, err := w.convert(generation, block)
	if err != nil {
		return err
	}
	return w.blockBatcher.Add(ctx, row)
}

// ArchiveChain opens a new generation and queues every block of chain under it.
func (w *ArchiveWriter) ArchiveChain(ctx context.Context, chain []model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	w.generation++
	generation := w.generation
	w.mu.Unlock()

	w.logger.Info("archiving replaced chain",
		zap.Uint64("generation", generation),
		zap.Int("length", len(chain)),
	)
	for _, block := range chain {
		row, err := w.convert(generation, block)
		if err != nil {
			return err
		}
		if err := w.blockBatcher.Add(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ArchiveWriter) convert(generation uint64, block model.Block) (model.ArchiveBlock, error) {
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return model.ArchiveBlock{}, fmt.Errorf("block %d tx count: %w", block.Index, err)
	}

	txs := make([]model.ArchivedTransaction, 0, len(block.Transactions))
	for i, tx := range block.Transactions {
		position, err := safe.Uint32(i)
		if err != nil {
			return model.ArchiveBlock{}, fmt.Errorf("block %d tx position: %w", block.Index, err)
		}
		txs = append(txs, model.ArchivedTransaction{
			NodeID:     w.nodeID,
			Generation: generation,
			BlockIndex: block.Index,
			Position:   position,
			Sender:     tx.Sender,
			Recipient:  tx.Recipient,
			Amount:     tx.Amount,
		})
	}

	return model.ArchiveBlock{
		Block: model.ArchivedBlock{
			NodeID:       w.nodeID,
			Generation:   generation,
			Index:        block.Index,
			Hash:         hashing.Block(block),
			PreviousHash: block.PreviousHash,
			Proof:        block.Proof,
			Timestamp:    block.Time(),
			TXCount:      txCount,
		},
		Transactions: txs,
	}, nil
}

func (w *ArchiveWriter) flush(ctx context.Context, rows []model.ArchiveBlock) error {
	blocks := make([]model.ArchivedBlock, 0, len(rows))
	txs := make([]model.ArchivedTransaction, 0, len(rows))

	for _, row := range rows {
		blocks = append(blocks, row.Block)
		txs = append(txs, row.Transactions...)
		if len(txs) >= transactionFlushThreshold {
			if err := w.repo.InsertTransactions(ctx, txs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactions", zap.Int("count", len(txs)))
			txs = txs[:0]
		}
	}

	if err := w.repo.InsertTransactions(ctx, txs); err != nil {
		return err
	}
	return w.repo.InsertBlocks(ctx, blocks)
}

// Package service implements the operations a ledger node exposes to its transport.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/hashing"
	"github.com/goodnatureofminers/powledger/internal/chain/ledger"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"go.uber.org/zap"
)

// TransactionRequest is a caller-supplied transaction. A nil field was not supplied.
type TransactionRequest struct {
	Sender    *string  `json:"sender"`
	Recipient *string  `json:"recipient"`
	Amount    *float64 `json:"amount"`
}

// NodeService runs mining, transaction intake, peer registration and conflict
// resolution against a single ledger.
type NodeService struct {
	nodeID   string
	ledger   Ledger
	miner    Miner
	resolver ConflictResolver
	archive  Archive
	metrics  NodeMetrics
	logger   *zap.Logger

	peersChanged chan struct{}
}

// NewNodeService builds a NodeService. archive may be nil.
func NewNodeService(
	nodeID string,
	l Ledger,
	miner Miner,
	resolver ConflictResolver,
	archive Archive,
	metrics NodeMetrics,
	logger *zap.Logger,
) (*NodeService, error) {
	if nodeID == "" {
		return nil, errors.New("node id is required")
	}
	if metrics == nil {
		return nil, errors.New("node metrics is required")
	}
	if archive == nil {
		archive = noopArchive{}
	}
	return &NodeService{
		nodeID:   nodeID,
		ledger:   l,
		miner:    miner,
		resolver: resolver,
		archive:  archive,
		metrics:  metrics,
		logger:   logger.With(zap.String("node", nodeID)),

		peersChanged: make(chan struct{}, 1),
	}, nil
}

// NodeID returns the identity credited with mining rewards.
func (s *NodeService) NodeID() string {
	return s.nodeID
}

// PeersChanged fires after RegisterNodes stores at least one address.
// Signals are coalesced while nobody is listening.
func (s *NodeService) PeersChanged() <-chan struct{} {
	return s.peersChanged
}

// Chain returns the full current chain and its length.
func (s *NodeService) Chain(_ context.Context) model.ChainSnapshot {
	return s.ledger.Snapshot()
}

// SubmitTransaction records a transaction in the pending buffer and returns the
// index of the block that will hold it.
func (s *NodeService) SubmitTransaction(_ context.Context, req TransactionRequest) (index uint64, err error) {
	defer func() {
		s.metrics.ObserveTransaction(err)
	}()

	switch {
	case req.Sender == nil:
		return 0, fmt.Errorf("%w: sender", model.ErrMissingField)
	case req.Recipient == nil:
		return 0, fmt.Errorf("%w: recipient", model.ErrMissingField)
	case req.Amount == nil:
		return 0, fmt.Errorf("%w: amount", model.ErrMissingField)
	}
	if math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) {
		return 0, fmt.Errorf("%w: amount must be finite", model.ErrInvalidField)
	}

	index, err = s.ledger.RecordTransaction(model.Transaction{
		Sender:    *req.Sender,
		Recipient: *req.Recipient,
		Amount:    *req.Amount,
	})
	if err != nil {
		s.logIntegrity(err)
		return 0, fmt.Errorf("record transaction: %w", err)
	}
	return index, nil
}

// Mine solves the puzzle against the last block's proof outside of the ledger lock,
// then seals a block crediting this node. If the chain changed while solving, the
// proof is discarded and model.ErrStaleProof is returned.
func (s *NodeService) Mine(ctx context.Context) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveMine(err, started)
	}()

	last, err := s.ledger.LastBlock()
	if err != nil {
		s.logIntegrity(err)
		return model.Block{}, fmt.Errorf("read last block: %w", err)
	}

	proof, err := s.miner.Solve(ctx, last.Proof)
	if err != nil {
		return model.Block{}, fmt.Errorf("solve proof for block %d: %w", last.Index+1, err)
	}

	block, err = s.ledger.SealNext(last, proof, hashing.Block(last), model.Reward(s.nodeID))
	if err != nil {
		if errors.Is(err, model.ErrStaleProof) {
			s.logger.Info("discarding stale proof", zap.Uint64("mined_on", last.Index), zap.Uint64("proof", proof))
		} else {
			s.logIntegrity(err)
		}
		return model.Block{}, fmt.Errorf("seal block: %w", err)
	}

	s.logger.Info("new block forged",
		zap.Uint64("index", block.Index),
		zap.Uint64("proof", block.Proof),
		zap.Int("transactions", len(block.Transactions)),
		zap.Duration("elapsed", time.Since(started)),
	)
	s.metrics.ObserveChainLength(s.ledger.Length())
	if archiveErr := s.archive.ArchiveBlock(ctx, block); archiveErr != nil {
		s.logger.Warn("archive block failed", zap.Uint64("index", block.Index), zap.Error(archiveErr))
	}
	return block, nil
}

// RegisterNodes adds every address to the peer set and returns the full peer set.
// Addresses are all parsed before any is stored, so an invalid address leaves the
// peer set unchanged.
func (s *NodeService) RegisterNodes(_ context.Context, addresses []string) ([]string, error) {
	for _, address := range addresses {
		if _, err := ledger.ParseAddress(address); err != nil {
			return nil, err
		}
	}
	for _, address := range addresses {
		location, err := s.ledger.RegisterNode(address)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("peer registered", zap.String("peer", location))
	}
	if len(addresses) > 0 {
		select {
		case s.peersChanged <- struct{}{}:
		default:
		}
	}
	return s.ledger.Peers(), nil
}

// ResolveConflicts polls all registered peers and adopts the longest valid chain
// if it is strictly longer than the local one. It returns whether the chain was
// replaced along with the chain now held by the ledger.
func (s *NodeService) ResolveConflicts(ctx context.Context) (bool, []model.Block, error) {
	local := s.ledger.Snapshot()

	res, err := s.resolver.Resolve(ctx, local.Length, s.ledger.Peers())
	if err != nil {
		return false, local.Chain, fmt.Errorf("resolve conflicts: %w", err)
	}
	if !res.Replaced {
		return false, local.Chain, nil
	}

	if !s.ledger.ReplaceIfLonger(res.Chain) {
		s.logger.Info("local chain grew during resolution; keeping it",
			zap.String("peer", res.Peer),
			zap.Int("candidate_length", len(res.Chain)),
		)
		return false, s.ledger.Snapshot().Chain, nil
	}

	s.logger.Info("chain replaced",
		zap.String("peer", res.Peer),
		zap.Int("old_length", local.Length),
		zap.Int("new_length", len(res.Chain)),
	)
	s.metrics.ObserveChainLength(len(res.Chain))
	if archiveErr := s.archive.ArchiveChain(ctx, res.Chain); archiveErr != nil {
		s.logger.Warn("archive replaced chain failed", zap.Error(archiveErr))
	}
	return true, s.ledger.Snapshot().Chain, nil
}

func (s *NodeService) logIntegrity(err error) {
	if errors.Is(err, model.ErrIntegrity) {
		s.logger.Error("ledger has no blocks", zap.Error(err))
	}
}

type noopArchive struct{}

func (noopArchive) Start(context.Context)                              {}
func (noopArchive) Stop()                                              {}
func (noopArchive) ArchiveBlock(context.Context, model.Block) error   { return nil }
func (noopArchive) ArchiveChain(context.Context, []model.Block) error { return nil }

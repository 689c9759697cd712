// Package consensus selects the longest valid chain among peer-reported ledgers.
package consensus

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"github.com/goodnatureofminers/powledger/pkg/workerpool"
	"go.uber.org/zap"
)

// PeerSnapshot is the outcome of polling one peer.
type PeerSnapshot struct {
	Peer     string
	Snapshot model.ChainSnapshot
	Err      error
}

// Result describes the chain picked by a resolution round.
type Result struct {
	Replaced bool
	Peer     string
	Chain    []model.Block
}

// Resolver polls peers and applies the longest-chain rule.
type Resolver struct {
	source      PeerSource
	validator   ChainValidator
	metrics     ResolverMetrics
	workerCount int
	logger      *zap.Logger
}

// NewResolver builds a Resolver polling at most workerCount peers at once.
func NewResolver(source PeerSource, validator ChainValidator, metrics ResolverMetrics, workerCount int, logger *zap.Logger) *Resolver {
	return &Resolver{
		source:      source,
		validator:   validator,
		metrics:     metrics,
		workerCount: workerCount,
		logger:      logger,
	}
}

// Resolve fetches every peer, waits for all of them, then picks the longest valid
// chain strictly longer than localLength. Unreachable and malformed peers are skipped.
func (r *Resolver) Resolve(ctx context.Context, localLength int, peers []string) (res Result, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveResolve(res.Replaced, err, started)
	}()

	snapshots, err := workerpool.Map(ctx, r.workerCount, peers, r.fetch)
	if err != nil {
		return Result{}, fmt.Errorf("poll peers: %w", err)
	}

	usable := make([]PeerSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.Err != nil {
			r.logger.Warn("skipping peer", zap.String("peer", s.Peer), zap.Error(s.Err))
			continue
		}
		usable = append(usable, s)
	}

	best, ok := Select(localLength, usable, r.validator.IsValid)
	if !ok {
		r.logger.Debug("local chain is authoritative",
			zap.Int("length", localLength),
			zap.Int("peers", len(peers)),
			zap.Int("reachable", len(usable)),
		)
		return Result{}, nil
	}

	r.logger.Info("found longer valid chain",
		zap.String("peer", best.Peer),
		zap.Int("length", best.Snapshot.Length),
		zap.Int("local_length", localLength),
	)
	return Result{Replaced: true, Peer: best.Peer, Chain: best.Snapshot.Chain}, nil
}

func (r *Resolver) fetch(ctx context.Context, peer string) PeerSnapshot {
	started := time.Now()
	snapshot, err := r.source.FetchChain(ctx, peer)
	if err == nil {
		err = checkSnapshot(snapshot)
	}
	r.metrics.ObservePeerFetch(err, started)
	return PeerSnapshot{Peer: peer, Snapshot: snapshot, Err: err}
}

func checkSnapshot(s model.ChainSnapshot) error {
	if len(s.Chain) == 0 {
		return fmt.Errorf("%w: empty chain", model.ErrMalformedSnapshot)
	}
	if s.Length != len(s.Chain) {
		return fmt.Errorf("%w: reported length %d, chain has %d blocks", model.ErrMalformedSnapshot, s.Length, len(s.Chain))
	}
	return nil
}

// Select applies the longest-chain rule to snapshots in order: a snapshot wins if its
// length is strictly greater than the best so far and its chain is valid. Ties keep the
// earlier candidate, and the local chain wins ties against every peer.
func Select(localLength int, snapshots []PeerSnapshot, isValid func([]model.Block) bool) (PeerSnapshot, bool) {
	bestLength := localLength
	var best PeerSnapshot
	found := false
	for _, s := range snapshots {
		if s.Snapshot.Length > bestLength && isValid(s.Snapshot.Chain) {
			bestLength = s.Snapshot.Length
			best = s
			found = true
		}
	}
	return best, found
}

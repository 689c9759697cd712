package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/powledger/internal/clock"
	"go.uber.org/zap"
)

// ConsensusFollower periodically runs conflict resolution so a node converges on
// the longest valid chain without waiting for a client request.
type ConsensusFollower struct {
	node          ConflictNode
	logger        *zap.Logger
	sleep         func(context.Context, time.Duration) error
	interval      time.Duration
	sleepDuration time.Duration
}

// NewConsensusFollower builds a follower that resolves every interval, or as soon
// as wake fires. wake may be nil.
func NewConsensusFollower(node ConflictNode, interval time.Duration, wake <-chan struct{}, logger *zap.Logger) (*ConsensusFollower, error) {
	if node == nil {
		return nil, errors.New("conflict node is required")
	}
	if interval <= 0 {
		return nil, errors.New("resolve interval must be positive")
	}
	return &ConsensusFollower{
		node:          node,
		logger:        logger,
		interval:      interval,
		sleepDuration: followerSleepDuration,
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.Wait(ctx, d, wake)
		},
	}, nil
}

// Run resolves conflicts until the context is canceled.
func (f *ConsensusFollower) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := f.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.logger.Warn("resolve iteration failed, backing off", zap.Error(err), zap.Duration("sleep", f.sleepDuration))
			if sleepErr := f.sleep(ctx, f.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (f *ConsensusFollower) run(ctx context.Context) error {
	replaced, chain, err := f.node.ResolveConflicts(ctx)
	if err != nil {
		return err
	}
	if replaced {
		f.logger.Info("adopted longer peer chain", zap.Int("length", len(chain)))
	} else {
		f.logger.Debug("local chain is authoritative", zap.Int("length", len(chain)))
	}
	return f.sleep(ctx, f.interval)
}

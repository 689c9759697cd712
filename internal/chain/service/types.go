package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/consensus"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		RecordTransaction(tx model.Transaction) (uint64, error)
		SealNext(prev model.Block, proof uint64, previousHash string, reward model.Transaction) (model.Block, error)
		LastBlock() (model.Block, error)
		Snapshot() model.ChainSnapshot
		Length() int
		ReplaceIfLonger(chain []model.Block) bool
		RegisterNode(address string) (string, error)
		Peers() []string
	}
	Miner interface {
		Solve(ctx context.Context, lastProof uint64) (uint64, error)
	}
	ConflictResolver interface {
		Resolve(ctx context.Context, localLength int, peers []string) (consensus.Result, error)
	}
	Archive interface {
		Start(ctx context.Context)
		Stop()
		ArchiveBlock(ctx context.Context, block model.Block) error
		ArchiveChain(ctx context.Context, chain []model.Block) error
	}
	ArchiveRepository interface {
		InsertBlocks(ctx context.Context, blocks []model.ArchivedBlock) error
		InsertTransactions(ctx context.Context, txs []model.ArchivedTransaction) error
		MaxGeneration(ctx context.Context, nodeID string) (uint64, error)
	}
	NodeMetrics interface {
		ObserveMine(err error, started time.Time)
		ObserveTransaction(err error)
		ObserveChainLength(length int)
	}
	ConflictNode interface {
		ResolveConflicts(ctx context.Context) (bool, []model.Block, error)
	}
)

package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"github.com/goodnatureofminers/powledger/internal/chain/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Node interface {
		Chain(ctx context.Context) model.ChainSnapshot
		SubmitTransaction(ctx context.Context, req service.TransactionRequest) (uint64, error)
		Mine(ctx context.Context) (model.Block, error)
		RegisterNodes(ctx context.Context, addresses []string) ([]string, error)
		ResolveConflicts(ctx context.Context) (bool, []model.Block, error)
	}
	HTTPMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)

package consensus

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PeerSource interface {
		FetchChain(ctx context.Context, address string) (model.ChainSnapshot, error)
	}
	ChainValidator interface {
		IsValid(chain []model.Block) bool
	}
	ResolverMetrics interface {
		ObservePeerFetch(err error, started time.Time)
		ObserveResolve(replaced bool, err error, started time.Time)
	}
)

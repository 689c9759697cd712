// Package main runs a proof-of-work ledger node.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/powledger/internal/chain/consensus"
	"github.com/goodnatureofminers/powledger/internal/chain/ledger"
	"github.com/goodnatureofminers/powledger/internal/chain/peer"
	"github.com/goodnatureofminers/powledger/internal/chain/pow"
	"github.com/goodnatureofminers/powledger/internal/chain/repository/clickhouse"
	"github.com/goodnatureofminers/powledger/internal/chain/service"
	"github.com/goodnatureofminers/powledger/internal/chain/validator"
	"github.com/goodnatureofminers/powledger/internal/metrics"
	"github.com/goodnatureofminers/powledger/internal/transport"
)

type config struct {
	Addr            string        `long:"addr" env:"POWLEDGER_ADDR" description:"HTTP API address" default:":5000"`
	NodeID          string        `long:"node-id" env:"POWLEDGER_NODE_ID" description:"identity credited with mining rewards (random when empty)"`
	Difficulty      int           `long:"difficulty" env:"POWLEDGER_DIFFICULTY" description:"number of leading zero hex digits a proof must produce" default:"4"`
	ProofAnchor     string        `long:"proof-anchor" env:"POWLEDGER_PROOF_ANCHOR" description:"field of the previous block peer proofs are checked against (previous-hash|proof)" default:"previous-hash"`
	Peers           []string      `long:"peer" env:"POWLEDGER_PEERS" env-delim:"," description:"peer URL to register at startup (repeatable)"`
	ResolveInterval time.Duration `long:"resolve-interval" env:"POWLEDGER_RESOLVE_INTERVAL" description:"period of background conflict resolution, 0 disables it" default:"0"`
	PeerTimeout     time.Duration `long:"peer-timeout" env:"POWLEDGER_PEER_TIMEOUT" description:"timeout for fetching a peer chain" default:"10s"`
	PeerWorkers     int           `long:"peer-workers" env:"POWLEDGER_PEER_WORKERS" description:"peers polled concurrently during resolution" default:"8"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"POWLEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the block archive, empty disables it"`
	MetricsAddr     string        `long:"metrics-addr" env:"POWLEDGER_METRICS_ADDR" description:"separate metrics server address, empty serves /metrics on the API address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.Difficulty < 1 {
		return fmt.Errorf("difficulty must be positive, got %d", cfg.Difficulty)
	}
	anchor, err := validator.ParseAnchor(cfg.ProofAnchor)
	if err != nil {
		return err
	}
	nodeID := cfg.NodeID
	if nodeID == "" {
		nodeID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	puzzle := pow.New(cfg.Difficulty)
	resolver := consensus.NewResolver(
		peer.NewClient(cfg.PeerTimeout, metrics.NewPeerClient()),
		validator.New(puzzle, anchor),
		metrics.NewResolver(nodeID),
		cfg.PeerWorkers,
		logger.Named("resolver"),
	)

	var archive service.Archive
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		writer, err := service.NewArchiveWriter(ctx, nodeID, repo, logger.Named("archive"))
		if err != nil {
			return err
		}
		writer.Start(ctx)
		defer writer.Stop()
		archive = writer
	}

	node, err := service.NewNodeService(
		nodeID,
		ledger.New(),
		puzzle,
		resolver,
		archive,
		metrics.NewNode(nodeID),
		logger.Named("node"),
	)
	if err != nil {
		return err
	}
	if len(cfg.Peers) > 0 {
		peers, err := node.RegisterNodes(ctx, cfg.Peers)
		if err != nil {
			return fmt.Errorf("register startup peers: %w", err)
		}
		logger.Info("registered startup peers", zap.Strings("peers", peers))
	}

	if cfg.ResolveInterval > 0 {
		follower, err := service.NewConsensusFollower(node, cfg.ResolveInterval, node.PeersChanged(), logger.Named("follower"))
		if err != nil {
			return err
		}
		go func() {
			if err := follower.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("consensus follower stopped", zap.Error(err))
			}
		}()
	}

	handler := transport.NewNodeHandler(node, metrics.NewHTTP(), logger.Named("http"))
	if cfg.MetricsAddr == "" {
		handler.Mux().Handle("/metrics", promhttp.Handler())
	} else {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	logger.Info("node started",
		zap.String("node_id", nodeID),
		zap.Int("difficulty", cfg.Difficulty),
		zap.String("proof_anchor", string(anchor)),
	)
	return serve(ctx, cfg.Addr, handler.Handler(), logger)
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// GET /mine holds the response open while solving.
		WriteTimeout:   5 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", zap.Error(err))
		}
	}()
}

// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeMineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "node",
		Name:      "mine_total",
		Help:      "Count of mining attempts.",
	}, []string{"node", "status"})

	nodeMineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "node",
		Name:      "mine_duration_seconds",
		Help:      "Duration of solving and sealing a block.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"node", "status"})

	nodeTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "node",
		Name:      "transactions_total",
		Help:      "Count of submitted transactions.",
	}, []string{"node", "status"})

	nodeChainLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "node",
		Name:      "chain_length",
		Help:      "Number of blocks in the local chain.",
	}, []string{"node"})
)

// Node tracks metrics for node operations.
type Node struct {
	node string
}

// NewNode constructs a Node collector labeled with nodeID.
func NewNode(nodeID string) *Node {
	if nodeID == "" {
		nodeID = "unknown"
	}
	return &Node{node: nodeID}
}

// ObserveMine records a mining attempt outcome and duration.
func (m Node) ObserveMine(err error, started time.Time) {
	status := statusOf(err)
	nodeMineTotal.WithLabelValues(m.node, status).Inc()
	nodeMineDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
}

// ObserveTransaction records a transaction submission outcome.
func (m Node) ObserveTransaction(err error) {
	nodeTransactionsTotal.WithLabelValues(m.node, statusOf(err)).Inc()
}

// ObserveChainLength records the current chain length.
func (m Node) ObserveChainLength(length int) {
	nodeChainLength.WithLabelValues(m.node).Set(float64(length))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

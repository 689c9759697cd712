package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverPeerFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "resolver",
		Name:      "peer_fetch_total",
		Help:      "Count of peer chain fetches during conflict resolution.",
	}, []string{"node", "status"})

	resolverPeerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "resolver",
		Name:      "peer_fetch_duration_seconds",
		Help:      "Duration of fetching and checking one peer chain.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})

	resolverResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "resolver",
		Name:      "resolve_total",
		Help:      "Count of conflict resolution rounds.",
	}, []string{"node", "status", "replaced"})

	resolverResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "resolver",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of a conflict resolution round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"node", "status"})
)

// Resolver tracks metrics for consensus resolution.
type Resolver struct {
	node string
}

// NewResolver constructs a Resolver collector labeled with nodeID.
func NewResolver(nodeID string) *Resolver {
	if nodeID == "" {
		nodeID = "unknown"
	}
	return &Resolver{node: nodeID}
}

// ObservePeerFetch records one peer fetch.
func (m Resolver) ObservePeerFetch(err error, started time.Time) {
	status := statusOf(err)
	resolverPeerFetchTotal.WithLabelValues(m.node, status).Inc()
	resolverPeerFetchDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
}

// ObserveResolve records a resolution round and whether it replaced the chain.
func (m Resolver) ObserveResolve(replaced bool, err error, started time.Time) {
	status := statusOf(err)
	resolverResolveTotal.WithLabelValues(m.node, status, strconv.FormatBool(replaced)).Inc()
	resolverResolveDuration.WithLabelValues(m.node, status).Observe(time.Since(started).Seconds())
}

// Package peer fetches chain snapshots from other nodes over HTTP.
package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

// maxSnapshotBytes bounds the body read from a single peer.
const maxSnapshotBytes = 64 << 20

type (
	// ClientMetrics records metrics for peer calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client calls the chain endpoint of peer nodes.
type Client struct {
	http    *http.Client
	metrics ClientMetrics
}

// NewClient builds a Client whose requests time out after timeout.
func NewClient(timeout time.Duration, metrics ClientMetrics) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

// FetchChain returns the chain reported by the node at address (host[:port]).
// Any transport, status or decoding failure is reported as model.ErrPeerUnreachable.
func (c *Client) FetchChain(ctx context.Context, address string) (snapshot model.ChainSnapshot, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_chain", err, started)
	}()

	endpoint := url.URL{Scheme: "http", Host: address, Path: "/chain"}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.ChainSnapshot{}, fmt.Errorf("%w: %s: build request: %v", model.ErrPeerUnreachable, address, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.ChainSnapshot{}, fmt.Errorf("%w: %s: %v", model.ErrPeerUnreachable, address, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return model.ChainSnapshot{}, fmt.Errorf("%w: %s: status %d", model.ErrPeerUnreachable, address, resp.StatusCode)
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, maxSnapshotBytes)).Decode(&snapshot); err != nil {
		return model.ChainSnapshot{}, fmt.Errorf("%w: %s: decode chain: %v", model.ErrPeerUnreachable, address, err)
	}
	return snapshot, nil
}

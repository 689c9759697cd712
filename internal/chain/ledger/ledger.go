// Package ledger holds the in-memory chain, the pending transaction buffer and the peer set.
package ledger

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/hashing"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

// Ledger owns all chain state of a node. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	blocks  []model.Block
	pending []model.Transaction
	peers   map[string]struct{}
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to timestamp sealed blocks.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New builds a Ledger seeded with the genesis block.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		peers: make(map[string]struct{}),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.blocks = append(l.blocks, l.newBlock(model.GenesisProof, model.GenesisPreviousHash))
	l.pending = nil
	return l
}

// RecordTransaction appends tx to the pending buffer and returns the index of the
// block that will hold it.
func (l *Ledger) RecordTransaction(tx model.Transaction) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, err := l.lastBlock()
	if err != nil {
		return 0, err
	}
	l.pending = append(l.pending, tx)
	return last.Index + 1, nil
}

// SealBlock commits the pending buffer into a new block and appends it.
// An empty previousHash defaults to the hash of the current last block.
func (l *Ledger) SealBlock(proof uint64, previousHash string) (model.Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.seal(proof, previousHash)
}

// SealNext seals a block mined against prev. If prev is no longer the last block the
// proof is stale: nothing is recorded and model.ErrStaleProof is returned.
// Otherwise reward is appended to the pending buffer and the block is sealed.
func (l *Ledger) SealNext(prev model.Block, proof uint64, previousHash string, reward model.Transaction) (model.Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, err := l.lastBlock()
	if err != nil {
		return model.Block{}, err
	}
	if last.Index != prev.Index || hashing.Block(last) != hashing.Block(prev) {
		return model.Block{}, fmt.Errorf("%w: mined on block %d, tip is block %d", model.ErrStaleProof, prev.Index, last.Index)
	}

	l.pending = append(l.pending, reward)
	return l.seal(proof, previousHash)
}

// LastBlock returns the most recently sealed block.
func (l *Ledger) LastBlock() (model.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastBlock()
}

// Chain returns a copy of the block sequence.
func (l *Ledger) Chain() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneChain(l.blocks)
}

// Snapshot returns the chain together with its length, read atomically.
func (l *Ledger) Snapshot() model.ChainSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return model.ChainSnapshot{
		Chain:  cloneChain(l.blocks),
		Length: len(l.blocks),
	}
}

// Length returns the number of sealed blocks.
func (l *Ledger) Length() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks)
}

// Pending returns a copy of the transactions not yet sealed.
func (l *Ledger) Pending() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.pending)
}

// ReplaceChain swaps the whole block sequence. Callers must validate chain first.
func (l *Ledger) ReplaceChain(chain []model.Block) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.blocks = cloneChain(chain)
}

// ReplaceIfLonger swaps the block sequence only if chain is strictly longer than
// the current one at the moment of the swap. Callers must validate chain first.
func (l *Ledger) ReplaceIfLonger(chain []model.Block) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(chain) <= len(l.blocks) {
		return false
	}
	l.blocks = cloneChain(chain)
	return true
}

// RegisterNode adds the network location (host[:port]) of address to the peer set.
// It returns the stored location; registering the same location twice is a no-op.
func (l *Ledger) RegisterNode(address string) (string, error) {
	location, err := ParseAddress(address)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.peers[location] = struct{}{}
	return location, nil
}

// Peers returns the registered peer locations in sorted order.
func (l *Ledger) Peers() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	peers := make([]string, 0, len(l.peers))
	for p := range l.peers {
		peers = append(peers, p)
	}
	sort.Strings(peers)
	return peers
}

// ParseAddress extracts the network location from a URL such as
// "http://192.168.0.5:5000/path". Scheme and path are discarded.
func ParseAddress(address string) (string, error) {
	parsed, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", model.ErrInvalidAddress, address, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no network location", model.ErrInvalidAddress, address)
	}
	return parsed.Host, nil
}

func (l *Ledger) seal(proof uint64, previousHash string) (model.Block, error) {
	if previousHash == "" {
		last, err := l.lastBlock()
		if err != nil {
			return model.Block{}, err
		}
		previousHash = hashing.Block(last)
	}

	block := l.newBlock(proof, previousHash)
	l.pending = nil
	l.blocks = append(l.blocks, block)
	return cloneBlock(block), nil
}

func (l *Ledger) newBlock(proof uint64, previousHash string) model.Block {
	txs := l.pending
	if txs == nil {
		txs = []model.Transaction{}
	}
	return model.Block{
		Index:        uint64(len(l.blocks)) + 1,
		Timestamp:    model.Timestamp(l.now()),
		Transactions: txs,
		Proof:        proof,
		PreviousHash: previousHash,
	}
}

func (l *Ledger) lastBlock() (model.Block, error) {
	if len(l.blocks) == 0 {
		return model.Block{}, model.ErrIntegrity
	}
	return l.blocks[len(l.blocks)-1], nil
}

func cloneChain(chain []model.Block) []model.Block {
	out := make([]model.Block, len(chain))
	for i, b := range chain {
		out[i] = cloneBlock(b)
	}
	return out
}

func cloneBlock(b model.Block) model.Block {
	b.Transactions = slices.Clone(b.Transactions)
	return b
}

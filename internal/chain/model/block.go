// Package model defines domain models for the proof-of-work ledger.
package model

import "time"

// GenesisPreviousHash is the predecessor link stored in the genesis block.
const GenesisPreviousHash = "1"

// GenesisProof is the puzzle solution stored in the genesis block.
const GenesisProof uint64 = 100

// Block is one sealed unit of the ledger.
type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	Proof        uint64        `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}

// Time converts the block timestamp to time.Time.
func (b Block) Time() time.Time {
	sec := int64(b.Timestamp)
	nsec := int64((b.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// Timestamp converts t to the block timestamp representation (seconds since epoch).
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// ChainSnapshot is a full read of a ledger, local or reported by a peer.
type ChainSnapshot struct {
	Chain  []Block `json:"chain"`
	Length int     `json:"length"`
}

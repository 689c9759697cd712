// Package validator checks candidate chains for hash-link and puzzle integrity.
package validator

import (
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/powledger/internal/chain/hashing"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"github.com/goodnatureofminers/powledger/internal/chain/pow"
)

// Anchor selects which field of the previous block the puzzle of the next block is checked against.
type Anchor string

const (
	// AnchorPreviousHash checks cur.proof against prev.previous_hash.
	AnchorPreviousHash Anchor = "previous-hash"
	// AnchorProof checks cur.proof against prev.proof, the value the miner solves against.
	AnchorProof Anchor = "proof"
)

// ParseAnchor converts a configuration value into an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch a := Anchor(s); a {
	case AnchorPreviousHash, AnchorProof:
		return a, nil
	case "":
		return AnchorPreviousHash, nil
	default:
		return "", fmt.Errorf("unknown proof anchor %q", s)
	}
}

// Validator walks chains received from untrusted peers.
type Validator struct {
	puzzle pow.Puzzle
	anchor Anchor
}

// New returns a Validator sharing puzzle with the miner.
func New(puzzle pow.Puzzle, anchor Anchor) *Validator {
	if anchor == "" {
		anchor = AnchorPreviousHash
	}
	return &Validator{puzzle: puzzle, anchor: anchor}
}

// IsValid reports whether every adjacent pair of chain is correctly linked and solved.
// A genesis-only chain is valid; an empty chain is not.
func (v *Validator) IsValid(chain []model.Block) bool {
	if len(chain) == 0 {
		return false
	}

	prev := chain[0]
	for _, cur := range chain[1:] {
		if cur.PreviousHash != hashing.Block(prev) {
			return false
		}
		if !v.puzzle.Valid(v.anchorOf(prev), cur.Proof) {
			return false
		}
		prev = cur
	}
	return true
}

func (v *Validator) anchorOf(prev model.Block) string {
	if v.anchor == AnchorProof {
		return strconv.FormatUint(prev.Proof, 10)
	}
	return prev.PreviousHash
}

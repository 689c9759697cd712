// Package pow implements the proof-of-work puzzle that gates block creation.
package pow

import (
	"context"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/powledger/internal/chain/hashing"
)

// DefaultDifficulty is the number of leading '0' hex digits a solution must produce.
const DefaultDifficulty = 4

// checkInterval is how many candidates Solve tries between context checks.
const checkInterval = 4096

// Puzzle holds the difficulty shared by the solver and the chain validator.
type Puzzle struct {
	Difficulty int
}

// New returns a Puzzle with the given difficulty.
func New(difficulty int) Puzzle {
	return Puzzle{Difficulty: difficulty}
}

// Default returns a Puzzle with DefaultDifficulty.
func Default() Puzzle {
	return New(DefaultDifficulty)
}

// Valid reports whether sha256(lastProof + proof) starts with Difficulty zero hex digits.
// lastProof is used verbatim; proof is written in decimal with no delimiter.
func (p Puzzle) Valid(lastProof string, proof uint64) bool {
	guess := strconv.AppendUint([]byte(lastProof), proof, 10)
	return strings.HasPrefix(hashing.Sum(guess), p.prefix())
}

// ValidProof is Valid with a numeric previous proof.
func (p Puzzle) ValidProof(lastProof, proof uint64) bool {
	return p.Valid(strconv.FormatUint(lastProof, 10), proof)
}

// Solve searches proof = 0, 1, 2, ... until ValidProof(lastProof, proof) holds.
// The search has no upper bound; it stops early only when ctx is done.
func (p Puzzle) Solve(ctx context.Context, lastProof uint64) (uint64, error) {
	last := strconv.FormatUint(lastProof, 10)
	for proof := uint64(0); ; proof++ {
		if proof%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if p.Valid(last, proof) {
			return proof, nil
		}
	}
}

func (p Puzzle) prefix() string {
	if p.Difficulty <= 0 {
		return ""
	}
	return strings.Repeat("0", p.Difficulty)
}

// Package hashing provides the canonical block encoding and digests used by the ledger.
package hashing

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/powledger/internal/chain/model"
)

// Canonical encodes v as JSON with the keys of every object sorted.
// Number literals are carried through unchanged.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("marshal canonical: %w", err)
	}
	return out, nil
}

// Sum returns the hex SHA-256 digest of data.
func Sum(data []byte) string {
	return hex.EncodeToString(chainhash.HashB(data))
}

// Block returns the hex SHA-256 digest of the canonical encoding of b.
//
// Blocks hold only strings and finite numbers, so encoding cannot fail for
// blocks produced by the ledger or decoded from JSON; a non-finite amount set
// by a Go caller panics.
func Block(b model.Block) string {
	data, err := Canonical(b)
	if err != nil {
		panic(fmt.Sprintf("hashing: canonical block %d: %v", b.Index, err))
	}
	return Sum(data)
}

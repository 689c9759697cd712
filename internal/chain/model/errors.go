package model

import "errors"

var (
	// ErrMissingField is returned when a submitted transaction lacks a required field.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField is returned when a submitted field is present but unusable.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidAddress is returned when a peer address has no network location.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrPeerUnreachable is returned when a peer chain cannot be fetched or decoded.
	ErrPeerUnreachable = errors.New("peer unreachable")
	// ErrMalformedSnapshot is returned when a peer reports a chain that cannot be considered.
	ErrMalformedSnapshot = errors.New("malformed chain snapshot")
	// ErrIntegrity is returned when the ledger holds no blocks at all.
	ErrIntegrity = errors.New("ledger integrity violated")
	// ErrStaleProof is returned when the chain tip moved while a proof was being solved.
	ErrStaleProof = errors.New("stale proof")
)

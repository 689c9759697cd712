package model

import "time"

// ArchivedBlock is a sealed block row persisted to ClickHouse.
type ArchivedBlock struct {
	NodeID       string
	Generation   uint64
	Index        uint64
	Hash         string
	PreviousHash string
	Proof        uint64
	Timestamp    time.Time
	TXCount      uint32
}

// ArchivedTransaction is a committed transaction row persisted to ClickHouse.
type ArchivedTransaction struct {
	NodeID     string
	Generation uint64
	BlockIndex uint64
	Position   uint32
	Sender     string
	Recipient  string
	Amount     float64
}

// ArchiveBlock groups a block row with the transactions it commits.
type ArchiveBlock struct {
	Block        ArchivedBlock
	Transactions []ArchivedTransaction
}

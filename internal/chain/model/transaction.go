package model

// RewardSender marks a transaction minted by the node that sealed the block.
const RewardSender = "0"

// RewardAmount is credited to the miner of every block.
const RewardAmount float64 = 1

// Transaction moves an amount between two opaque identifiers.
type Transaction struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// Reward builds the transaction crediting nodeID for sealing a block.
func Reward(nodeID string) Transaction {
	return Transaction{
		Sender:    RewardSender,
		Recipient: nodeID,
		Amount:    RewardAmount,
	}
}

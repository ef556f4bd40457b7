package evmclient

import "time"

// Transfer is one observed ERC-20 transfer touching a tracked wallet.
type Transfer struct {
	Chain       string
	TxHash      string
	Token       string
	From        string
	To          string
	BlockNumber uint64
	Timestamp   time.Time
}

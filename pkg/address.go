package pkg

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateWalletAddress checks that the address is a well-formed
// 20-byte hex EVM address. Empty addresses are allowed: walletless
// agents are a supported scoring path.
func ValidateWalletAddress(address string) error {
	if address == "" {
		return nil
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid EVM address: %s", address)
	}
	return nil
}

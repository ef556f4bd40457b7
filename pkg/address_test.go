package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWalletAddress(t *testing.T) {
	assert.NoError(t, ValidateWalletAddress(""))
	assert.NoError(t, ValidateWalletAddress("0x4fC35b1cdcAd8Ff45bcb3E19d0Eb2A6b3b2c9e11"))
	assert.Error(t, ValidateWalletAddress("not-an-address"))
	assert.Error(t, ValidateWalletAddress("0x1234"))
}

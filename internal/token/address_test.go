package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddressAccepted(t *testing.T) {
	valid := []string{
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", // USDC mint
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",  // token program
		"11111111111111111111111111111111",             // system program
	}
	for _, a := range valid {
		assert.True(t, IsValidAddress(a), "address %q", a)
	}
}

func TestIsValidAddressRejected(t *testing.T) {
	invalid := []string{
		"",
		"notanaddress",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt10", // '0' is not base58
		"0x8ba1f109551bD432803012645Ac136ddd64DBA72",   // EVM address
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1vEPjFWdd5", // wrong length
	}
	for _, a := range invalid {
		assert.False(t, IsValidAddress(a), "address %q", a)
	}
}

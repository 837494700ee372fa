package token

import "github.com/gagliardetto/solana-go"

// IsValidAddress reports whether s parses as a Solana public key.
// The SDK's base58 parser is the source of truth; this never panics and
// never returns an error — malformed input is simply false.
func IsValidAddress(s string) bool {
	if s == "" {
		return false
	}
	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}

// ParseAddress parses a base58 address into a public key.
func ParseAddress(s string) (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(s)
}

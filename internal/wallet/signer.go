package wallet

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Signer signs Solana transactions for a signing wallet. Key retrieval can
// fail (keychain locked, user declined the OS prompt) — that failure is the
// CLI equivalent of a wallet-UI signature rejection.
type Signer struct {
	wallet *Wallet
	ks     KeyStorage
}

// NewSigner creates a signer for the given wallet.
func NewSigner(w *Wallet, ks KeyStorage) *Signer {
	return &Signer{wallet: w, ks: ks}
}

// PublicKey returns the wallet's public key.
func (s *Signer) PublicKey() (solana.PublicKey, error) {
	return s.wallet.PublicKey()
}

// SignTransaction signs tx in place with the wallet's key.
func (s *Signer) SignTransaction(tx *solana.Transaction) error {
	if s.wallet.Type != TypeSigning {
		return fmt.Errorf("wallet %q is watch-only and cannot sign", s.wallet.Name)
	}

	base58Key, err := s.ks.Retrieve(s.wallet.KeyRef)
	if err != nil {
		return fmt.Errorf("retrieving key: %w", err)
	}

	privKey, err := solana.PrivateKeyFromBase58(base58Key)
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}

	signerKey := privKey.PublicKey()
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(signerKey) {
			return &privKey
		}
		return nil
	}); err != nil {
		return fmt.Errorf("signing transaction: %w", err)
	}
	return nil
}

// Address returns the wallet's base58 address.
func (s *Signer) Address() string {
	return s.wallet.Address
}

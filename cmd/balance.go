package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/ui"
)

var balanceWallet string

var balanceCmd = &cobra.Command{
	Use:   "balance [name]",
	Short: "Show a wallet's USDC balance",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := balanceWallet
		if len(args) > 0 {
			name = args[0]
		}

		mgr := newWalletManager()
		w, err := resolveWallet(mgr, name)
		if err != nil {
			return err
		}
		owner, err := w.PublicKey()
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Fetching balance...")
		spin.Start()
		amount, err := fetchBalance(cmd, owner)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Balance", [][2]string{
			{"Wallet", w.Name},
			{"Address", ui.TruncateAddr(w.Address)},
			{"Balance", amount + " " + config.TokenSymbol},
			{"Network", cfg.NetworkMode},
		}))
		return nil
	},
}

// fetchBalance reads the USDC balance of owner's associated token account.
// A missing account simply means zero.
func fetchBalance(cmd *cobra.Command, owner solana.PublicKey) (string, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint())
	if err != nil {
		return "", fmt.Errorf("deriving token account: %w", err)
	}

	client := newChainClient()
	exists, err := client.AccountExists(cmd.Context(), ata)
	if err != nil {
		return "", err
	}
	if !exists {
		return "0", nil
	}

	bal, err := client.TokenAccountBalance(cmd.Context(), ata)
	if err != nil {
		return "", err
	}
	if bal.UiAmountString != "" {
		return bal.UiAmountString, nil
	}
	return bal.Amount, nil
}

func init() {
	balanceCmd.Flags().StringVar(&balanceWallet, "wallet", "", "wallet name (default: config)")
}

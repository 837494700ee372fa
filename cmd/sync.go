package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/ui"
)

var syncWallet string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile local history with the indexer",
	Long: `Fetch recent on-chain USDC activity for a wallet from the indexer and
merge it into the local receipt store. Incoming transfers appear here for
the first time; local notes are preserved.

A forced sync always refetches, even for a wallet synced moments ago.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		w, err := resolveWallet(mgr, syncWallet)
		if err != nil {
			return err
		}

		store := newReceiptStore()
		reconciler := newReconciler(store)
		if reconciler == nil {
			fmt.Println(ui.Warn("No indexer API key configured."))
			fmt.Println(ui.Hint("Set one with: solpay config set-indexer-key <key>  (or SOLPAY_INDEXER_KEY)"))
			return nil
		}

		spin := ui.NewSpinner(fmt.Sprintf("Syncing %s...", w.Name))
		spin.Start()
		reconciler.Reset()
		reconciler.Sync(cmd.Context(), w.Address)
		spin.Stop()

		receipts, err := store.List()
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Synced. %d receipt(s) in history.", len(receipts))))
		fmt.Println(ui.Hint("View with: solpay history"))
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncWallet, "wallet", "", "wallet to sync (default: config)")
}

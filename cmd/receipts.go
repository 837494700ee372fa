package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/ui"
)

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Manage the local receipt store",
}

var receiptsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all local receipts",
	Long: `Delete every locally stored receipt, including notes.

On-chain history is untouched — a later 'solpay sync' repopulates
confirmed transfers from the indexer, but notes are gone for good.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newReceiptStore()
		receipts, err := store.List()
		if err != nil {
			return err
		}
		if len(receipts) == 0 {
			fmt.Println(ui.Meta("No receipts to clear."))
			return nil
		}

		if !ui.ConfirmDanger(fmt.Sprintf("Delete all %d receipt(s)? Notes cannot be recovered.", len(receipts))) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing receipts: %w", err)
		}
		fmt.Println(ui.Success("Receipt history cleared."))
		fmt.Println(ui.Hint("Repopulate confirmed transfers with: solpay sync"))
		return nil
	},
}

func init() {
	receiptsCmd.AddCommand(receiptsClearCmd)
}

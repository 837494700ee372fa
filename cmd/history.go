package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/receipt"
	"github.com/solpayhq/solpay/internal/ui"
)

var (
	historySync   bool
	historyPlain  bool
	historyWallet string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show transfer history",
	Long: `Show the local receipt history, newest first.

With --sync the history is first reconciled against the indexer, merging
on-chain transfers (including incoming ones) into the local store. Local
notes always survive the merge.

Interactive controls: ↑↓ navigate, o open in explorer, c copy signature,
q quit. Use --plain for a non-interactive dump.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newReceiptStore()

		if historySync {
			mgr := newWalletManager()
			w, err := resolveWallet(mgr, historyWallet)
			if err != nil {
				return err
			}
			reconciler := newReconciler(store)
			if reconciler == nil {
				fmt.Println(ui.Warn("No indexer API key configured — showing local receipts only."))
				fmt.Println(ui.Hint("Set one with: solpay config set-indexer-key <key>  (or SOLPAY_INDEXER_KEY)"))
			} else {
				spin := ui.NewSpinner("Syncing history...")
				spin.Start()
				reconciler.Sync(cmd.Context(), w.Address)
				spin.Stop()
			}
		}

		receipts, err := store.List()
		if err != nil {
			return fmt.Errorf("loading receipts: %w", err)
		}
		if len(receipts) == 0 {
			fmt.Println(ui.Info("No transfers recorded yet."))
			fmt.Println(ui.Hint("Send one with: solpay send --to <address> --amount 1"))
			return nil
		}
		// Store order is upsert order; display order is newest first.
		sort.SliceStable(receipts, func(i, j int) bool {
			return receipts[i].CreatedAt > receipts[j].CreatedAt
		})
		if historyLimit > 0 && len(receipts) > historyLimit {
			receipts = receipts[:historyLimit]
		}

		table, rows := buildHistoryTable(receipts)
		if historyPlain {
			fmt.Println(table.Render())
			fmt.Println(ui.Meta(fmt.Sprintf("%d receipt(s)", len(receipts))))
			return nil
		}

		title := ui.StyleTitle.Render(fmt.Sprintf("Transfer History  ·  %s", cfg.NetworkMode))
		return ui.RunReceiptList(title, table, rows)
	},
}

// buildHistoryTable renders receipts into a table plus the parallel
// interactivity rows.
func buildHistoryTable(receipts []receipt.Receipt) (*ui.Table, []ui.ReceiptRow) {
	table := ui.NewTable(ui.ReceiptColumns())

	rows := make([]ui.ReceiptRow, 0, len(receipts))
	for _, r := range receipts {
		counterparty := r.To
		if r.Direction == receipt.DirectionReceived {
			counterparty = r.From
		}

		table.AddRow(ui.Row{
			time.UnixMilli(r.CreatedAt).Local().Format("2006-01-02 15:04"),
			directionLabel(r.Direction),
			r.Amount + " " + r.TokenSymbol,
			ui.TruncateAddr(counterparty),
			statusLabel(r.Status),
			ui.TruncateAddr(r.Signature),
		})
		rows = append(rows, ui.ReceiptRow{
			Signature:   r.Signature,
			ExplorerURL: r.ExplorerURL,
			Note:        r.Note,
		})
	}
	return table, rows
}

func directionLabel(d string) string {
	if d == receipt.DirectionReceived {
		return "received"
	}
	return "sent"
}

func statusLabel(s string) string {
	switch s {
	case receipt.StatusConfirmed:
		return "confirmed"
	case receipt.StatusFailed:
		return "failed"
	case receipt.StatusConfirming:
		return "confirming"
	default:
		return s
	}
}

func init() {
	historyCmd.Flags().BoolVar(&historySync, "sync", false, "reconcile with the indexer before showing")
	historyCmd.Flags().BoolVar(&historyPlain, "plain", false, "non-interactive output")
	historyCmd.Flags().StringVar(&historyWallet, "wallet", "", "wallet to sync (default: config)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "show at most N receipts (0 = all)")
}

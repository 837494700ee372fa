package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/paylink"
	"github.com/solpayhq/solpay/internal/token"
	"github.com/solpayhq/solpay/internal/transfer"
	"github.com/solpayhq/solpay/internal/ui"
)

var (
	sendTo     string
	sendAmount string
	sendNote   string
	sendWallet string
	sendLink   string
	sendYes    bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send USDC to an address",
	Long: `Send USDC from a signing wallet to any Solana address.

If the recipient has no USDC token account yet, one is created inside the
same transaction — the transfer is all-or-nothing. The attempt is recorded
locally before signing, so even a rejected signature leaves a receipt.

  solpay send --to <address> --amount 12.5 --note "rent"
  solpay send --link "solana:<address>?amount=12.5"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sendLink != "" {
			req, err := paylink.Parse(sendLink)
			if err != nil {
				return err
			}
			if req.SPLToken != "" && req.SPLToken != config.Mint(cfg.NetworkMode) {
				return fmt.Errorf("payment link requests token %s — only USDC is supported on %s", req.SPLToken, cfg.NetworkMode)
			}
			sendTo = req.Recipient
			if sendAmount == "" {
				sendAmount = req.Amount
			}
			if sendNote == "" {
				sendNote = req.Memo
			}
		}

		if sendTo == "" {
			return fmt.Errorf("--to is required")
		}
		if sendAmount == "" {
			return fmt.Errorf("--amount is required")
		}
		if !token.IsValidAddress(sendTo) {
			return fmt.Errorf("invalid recipient address %q", sendTo)
		}
		if _, err := token.ToBaseUnits(sendAmount, config.TokenDecimals); err != nil {
			return fmt.Errorf("invalid amount %q: %w", sendAmount, err)
		}

		mgr := newWalletManager()
		w, err := resolveWallet(mgr, sendWallet)
		if err != nil {
			return err
		}
		signer, err := mgr.Signer(w.Name)
		if err != nil {
			return err
		}
		from, err := w.PublicKey()
		if err != nil {
			return err
		}
		to, err := token.ParseAddress(sendTo)
		if err != nil {
			return err
		}

		// Preview screen.
		pairs := [][2]string{
			{"From", fmt.Sprintf("%s (%s)", w.Name, ui.TruncateAddr(w.Address))},
			{"To", sendTo},
			{"Amount", sendAmount + " " + config.TokenSymbol},
			{"Network", cfg.NetworkMode},
		}
		if sendNote != "" {
			pairs = append(pairs, [2]string{"Note", sendNote})
		}
		fmt.Println(ui.KeyValueBlock("Transfer Preview", pairs))

		if !sendYes && !ui.ConfirmTransfer(sendAmount, config.TokenSymbol, sendTo) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		store := newReceiptStore()
		reconciler := newReconciler(store)

		spin := ui.NewSpinner("Preparing transfer...")
		spin.Start()

		hooks := transfer.Hooks{
			OnPhase: func(p transfer.Phase) {
				switch p {
				case transfer.PhaseSigning:
					spin.SetMessage("Signing (your keychain may prompt)...")
				case transfer.PhaseConfirming:
					spin.SetMessage("Awaiting finality...")
				}
			},
		}
		if reconciler != nil {
			hooks.ResetSync = reconciler.Reset
		}

		lc := transfer.NewLifecycle(
			store, newChainClient(), cfg.NetworkMode, mint(),
			time.Duration(cfg.ConfirmTimeout)*time.Second, hooks, nil,
		)

		r, err := lc.Send(cmd.Context(), transfer.SendParams{
			From:     from,
			To:       to,
			AmountUI: sendAmount,
			Note:     sendNote,
			Signer:   signer,
		})
		spin.Stop()
		if err != nil {
			if r != nil && r.Signature != "" {
				fmt.Println(ui.Meta("Signature: " + r.Signature))
				fmt.Println(ui.Meta(r.ExplorerURL))
			}
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Sent %s %s!", r.Amount, r.TokenSymbol)))
		fmt.Println(ui.Addr("Signature: " + r.Signature))
		fmt.Println(ui.Meta(r.ExplorerURL))

		if bal, err := fetchBalance(cmd, from); err == nil {
			fmt.Println(ui.Meta("New balance: " + bal + " " + config.TokenSymbol))
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient address")
	sendCmd.Flags().StringVar(&sendAmount, "amount", "", "amount in USDC, e.g. 12.5")
	sendCmd.Flags().StringVar(&sendNote, "note", "", "optional note stored with the receipt")
	sendCmd.Flags().StringVar(&sendWallet, "wallet", "", "wallet name (default: config)")
	sendCmd.Flags().StringVar(&sendLink, "link", "", "solana: payment link to pre-fill recipient and amount")
	sendCmd.Flags().BoolVarP(&sendYes, "yes", "y", false, "skip the confirmation prompt")
}

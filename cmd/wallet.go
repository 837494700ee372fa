package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/ui"
	"github.com/solpayhq/solpay/internal/wallet"
)

var walletKeyFlag string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets",
}

var walletAddCmd = &cobra.Command{
	Use:   "add <name> [address]",
	Short: "Add a wallet",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()

		if walletKeyFlag != "" {
			// Signing wallet; the key goes to the OS keychain.
			if err := mgr.AddWithKey(name, walletKeyFlag); err != nil {
				return err
			}
			w, _ := mgr.Get(name)
			fmt.Println(ui.Success(fmt.Sprintf("Signing wallet %q added: %s", name, ui.Addr(w.Address))))
			fmt.Println(ui.Hint(fmt.Sprintf("Set as default with: solpay wallet use %s", name)))
		} else {
			if len(args) < 2 {
				return fmt.Errorf("address required for watch-only wallet\n  Usage: solpay wallet add <name> <address>\n  Or for signing: solpay wallet add <name> --key <base58-private-key>")
			}
			address := args[1]
			if err := mgr.Add(name, &wallet.Wallet{
				Name:    name,
				Address: address,
				Type:    wallet.TypeWatchOnly,
			}); err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Watch-only wallet %q added: %s", name, ui.Addr(address))))
			fmt.Println(ui.Hint(fmt.Sprintf("Set as default with: solpay wallet use %s", name)))
		}
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		wallets := mgr.List()

		if len(wallets) == 0 {
			fmt.Println(ui.Info("No wallets configured yet."))
			fmt.Println(ui.Hint("Add one with: solpay wallet add myWallet <base58-address>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 16},
			{Title: "Address", Width: 46},
			{Title: "Type", Width: 12},
			{Title: "Default", Width: 8},
		})

		for _, w := range wallets {
			def := ""
			if w.IsDefault {
				def = ui.StyleSuccess.Render("✓")
			}
			t.AddRow(ui.Row{
				ui.Val(w.Name),
				ui.Addr(w.Address),
				ui.Meta(w.Type),
				def,
			})
		}
		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d wallet(s) configured", len(wallets))))
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !ui.ConfirmDanger(fmt.Sprintf("Remove wallet %q? A signing wallet's key is deleted from the keychain.", name)) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}
		mgr := newWalletManager()
		if err := mgr.Remove(name); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wallet %q removed.", name)))
		return nil
	},
}

var walletUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()
		if err := mgr.SetDefault(name); err != nil {
			return err
		}
		cfg.DefaultWallet = name
		cfg.Save() //nolint:errcheck
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet set to %q.", name)))
		fmt.Println(ui.Hint("This wallet is used whenever --wallet is not specified."))
		return nil
	},
}

var walletGenerateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a new Solana wallet",
	Long: `Generate a brand-new ed25519 keypair and store the private key in the OS keychain.

The private key is displayed ONCE immediately after creation.
Copy it and store it in a password manager — if you lose it, the wallet is gone forever.

Re-export later with: solpay wallet export <name>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		mgr := newWalletManager()
		w, key, err := mgr.Generate(name)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("  %s  %s\n", ui.Meta("Wallet :"), ui.Val(w.Name))
		fmt.Printf("  %s  %s\n\n", ui.Meta("Address:"), ui.Addr(w.Address))

		fmt.Println(ui.Warn("SAVE YOUR PRIVATE KEY — shown only once. Never share it."))
		fmt.Println()
		fmt.Println("  " + ui.Val(key))
		fmt.Println()
		fmt.Println(ui.Hint("Store in a password manager. Lose it → wallet gone forever."))
		fmt.Println(ui.Hint("Re-export anytime: solpay wallet export " + name))
		fmt.Println()
		return nil
	},
}

var walletExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Re-export the private key of a signing wallet",
	Long: `Retrieve and display the stored private key for a signing wallet.

The key is retrieved from the OS keychain — it never leaves your machine.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if !ui.ConfirmDanger(fmt.Sprintf("Reveal the private key of wallet %q?", name)) {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		mgr := newWalletManager()
		key, err := mgr.ExportKey(name)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(ui.Warn("PRIVATE KEY — do not share this with anyone."))
		fmt.Println()
		fmt.Println("  " + ui.Val(key))
		fmt.Println()
		return nil
	},
}

func init() {
	walletAddCmd.Flags().StringVar(&walletKeyFlag, "key", "", "base58 private key for signing wallet (stored in OS keychain)")
	walletCmd.AddCommand(walletAddCmd, walletListCmd, walletRemoveCmd, walletUseCmd,
		walletGenerateCmd, walletExportCmd)
}

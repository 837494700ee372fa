package cmd

import (
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/paylink"
	"github.com/solpayhq/solpay/internal/ui"
)

var (
	requestAmount string
	requestMemo   string
	requestWallet string
	requestNoQR   bool
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Create a payment link (with QR code) for receiving USDC",
	Long: `Build a solana: payment link requesting USDC to one of your wallets.
Share the link or let the payer scan the QR code with any Solana wallet.

  solpay request --amount 25 --memo "invoice 42"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newWalletManager()
		w, err := resolveWallet(mgr, requestWallet)
		if err != nil {
			return err
		}

		link, err := paylink.Request{
			Recipient: w.Address,
			Amount:    requestAmount,
			SPLToken:  config.Mint(cfg.NetworkMode),
			Memo:      requestMemo,
		}.Build()
		if err != nil {
			return err
		}

		pairs := [][2]string{
			{"Wallet", w.Name},
			{"Address", ui.TruncateAddr(w.Address)},
			{"Token", config.TokenSymbol},
			{"Network", cfg.NetworkMode},
		}
		if requestAmount != "" {
			pairs = append(pairs, [2]string{"Amount", requestAmount + " " + config.TokenSymbol})
		}
		if requestMemo != "" {
			pairs = append(pairs, [2]string{"Memo", requestMemo})
		}
		fmt.Println(ui.KeyValueBlock("Payment Request", pairs))

		fmt.Println()
		fmt.Println(ui.Addr(link))
		fmt.Println()

		if !requestNoQR {
			qrterminal.GenerateWithConfig(link, qrterminal.Config{
				Level:     qrterminal.M,
				Writer:    os.Stdout,
				BlackChar: qrterminal.BLACK,
				WhiteChar: qrterminal.WHITE,
				QuietZone: 1,
			})
			fmt.Println()
		}

		fmt.Println(ui.Hint("The payer can run: solpay send --link \"" + link + "\""))
		return nil
	},
}

var requestParseCmd = &cobra.Command{
	Use:   "parse <link>",
	Short: "Decode a solana: payment link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := paylink.Parse(args[0])
		if err != nil {
			return err
		}

		pairs := [][2]string{{"Recipient", req.Recipient}}
		if req.Amount != "" {
			pairs = append(pairs, [2]string{"Amount", req.Amount})
		}
		if req.SPLToken != "" {
			label := req.SPLToken
			if req.SPLToken == config.Mint(cfg.NetworkMode) {
				label = config.TokenSymbol + " (" + ui.TruncateAddr(req.SPLToken) + ")"
			}
			pairs = append(pairs, [2]string{"Token", label})
		} else {
			pairs = append(pairs, [2]string{"Token", "SOL (native)"})
		}
		if req.Memo != "" {
			pairs = append(pairs, [2]string{"Memo", req.Memo})
		}
		fmt.Println(ui.KeyValueBlock("Payment Link", pairs))
		return nil
	},
}

func init() {
	requestCmd.Flags().StringVar(&requestAmount, "amount", "", "requested amount in USDC (optional)")
	requestCmd.Flags().StringVar(&requestMemo, "memo", "", "memo shown to the payer (optional)")
	requestCmd.Flags().StringVar(&requestWallet, "wallet", "", "receiving wallet (default: config)")
	requestCmd.Flags().BoolVar(&requestNoQR, "no-qr", false, "skip the QR code")
	requestCmd.AddCommand(requestParseCmd)
}

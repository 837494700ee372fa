package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		indexerKey := "not set"
		if cfg.ResolveIndexerKey() != "" {
			indexerKey = "set"
		}
		defaultWallet := cfg.DefaultWallet
		if defaultWallet == "" {
			defaultWallet = "none"
		}

		fmt.Println(ui.KeyValueBlock("Configuration", [][2]string{
			{"Config dir", cfg.Dir()},
			{"Network", cfg.NetworkMode},
			{"RPC", cfg.ResolveRPC()},
			{"Indexer key", indexerKey},
			{"Wallet", defaultWallet},
			{"Timeout", fmt.Sprintf("%ds confirmation wait", cfg.ConfirmTimeout)},
		}))
		return nil
	},
}

var configSetRPCCmd = &cobra.Command{
	Use:   "set-rpc <url>",
	Short: "Set a custom RPC endpoint (empty string resets to the cluster default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.RPCURL = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("RPC endpoint set to " + cfg.ResolveRPC()))
		return nil
	},
}

var configSetIndexerKeyCmd = &cobra.Command{
	Use:   "set-indexer-key <key>",
	Short: "Set the indexer API key used for history sync",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.IndexerAPIKey = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Indexer key saved."))
		fmt.Println(ui.Hint("SOLPAY_INDEXER_KEY in the environment takes precedence when set."))
		return nil
	},
}

var configSetNetworkModeCmd = &cobra.Command{
	Use:   "set-network-mode <mainnet|devnet>",
	Short: "Persist the network mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := args[0]
		if mode != config.NetworkMainnet && mode != config.NetworkDevnet {
			return fmt.Errorf("invalid network mode %q — use %q or %q", mode, config.NetworkMainnet, config.NetworkDevnet)
		}
		cfg.NetworkMode = mode
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Network mode set to " + ui.Network(mode)))
		return nil
	},
}

var configSetConfirmTimeoutCmd = &cobra.Command{
	Use:   "set-confirm-timeout <seconds>",
	Short: "Set how long a send waits for finality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid timeout %q — want a positive number of seconds", args[0])
		}
		cfg.ConfirmTimeout = secs
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Confirmation timeout set to %ds.", secs)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(
		configShowCmd,
		configSetRPCCmd,
		configSetIndexerKeyCmd,
		configSetNetworkModeCmd,
		configSetConfirmTimeoutCmd,
	)
}

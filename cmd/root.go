package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/solpayhq/solpay/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/solpayhq/solpay/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
	devnet  bool
	mainnet bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "solpay",
	Short: "Non-custodial USDC payments on Solana",
	Long: `solpay — send, receive, and track USDC on Solana from your terminal.

  Keys live in your OS keychain and never leave your machine. Transfers
  are atomic: the recipient's token account is created in the same
  transaction when needed. Every attempt is recorded locally and enriched
  from the indexer on sync.

Global flags --devnet and --mainnet override the configured network mode
for a single invocation. Without either flag the persisted mode is used
(default: mainnet). Persist with: solpay config set-network-mode <mode>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if devnet {
			cfg.NetworkMode = config.NetworkDevnet
		}
		if mainnet {
			cfg.NetworkMode = config.NetworkMainnet
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

func init() {
	// SOLPAY_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("SOLPAY_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.solpay)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&devnet, "devnet", false, "use devnet instead of mainnet")
	rootCmd.PersistentFlags().BoolVar(&mainnet, "mainnet", false, "use mainnet instead of devnet")
	rootCmd.MarkFlagsMutuallyExclusive("devnet", "mainnet")

	// Register all sub-commands.
	rootCmd.AddCommand(
		walletCmd,
		balanceCmd,
		sendCmd,
		historyCmd,
		syncCmd,
		requestCmd,
		receiptsCmd,
		configCmd,
	)
}

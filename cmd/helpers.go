package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"github.com/solpayhq/solpay/internal/chain"
	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/indexer"
	"github.com/solpayhq/solpay/internal/receipt"
	"github.com/solpayhq/solpay/internal/wallet"
)

// newWalletManager creates a Manager backed by the config-dir JSON store.
func newWalletManager() *wallet.Manager {
	return wallet.NewManager(wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath())))
}

// newReceiptStore creates the config-dir receipt store.
func newReceiptStore() *receipt.JSONStore {
	return receipt.NewJSONStore(cfg.ReceiptsPath())
}

// newChainClient creates an RPC client for the resolved endpoint.
func newChainClient() *chain.RPCClient {
	return chain.NewRPCClient(cfg.ResolveRPC())
}

// newReconciler builds the indexer reconciler, or nil when no API key is
// configured (history then shows local receipts only).
func newReconciler(store receipt.Store) *indexer.Reconciler {
	client := indexer.NewClient(cfg.IndexerBaseURL, cfg.ResolveIndexerKey())
	if client == nil {
		return nil
	}
	return indexer.NewReconciler(client, store, cfg.NetworkMode, slog.Default())
}

// resolveWallet returns the named wallet, or the default when name is empty.
func resolveWallet(mgr *wallet.Manager, name string) (*wallet.Wallet, error) {
	if name != "" {
		w, err := mgr.Get(name)
		if err != nil {
			return nil, fmt.Errorf(
				"wallet %q not found — run `solpay wallet list` or set a default with `solpay wallet use <name>`",
				name,
			)
		}
		return w, nil
	}
	if cfg.DefaultWallet != "" {
		if w, err := mgr.Get(cfg.DefaultWallet); err == nil {
			return w, nil
		}
	}
	if w := mgr.Default(); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("no wallet configured — add one with `solpay wallet add <name> <address>`")
}

// mint returns the USDC mint public key for the active network mode.
func mint() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(config.Mint(cfg.NetworkMode))
}

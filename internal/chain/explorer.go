package chain

import "github.com/solpayhq/solpay/internal/config"

// ExplorerURL derives the block-explorer link for a transaction signature.
// Pure string templating — never a network call.
func ExplorerURL(networkMode, signature string) string {
	if signature == "" {
		return ""
	}
	url := "https://solscan.io/tx/" + signature
	if networkMode == config.NetworkDevnet {
		url += "?cluster=devnet"
	}
	return url
}

package config

// Network identifiers. solpay speaks to exactly one chain in one of two
// cluster environments.
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// The one supported token: USDC, 6 decimals.
const (
	TokenSymbol   = "USDC"
	TokenDecimals = 6
)

// USDC mint addresses per cluster.
const (
	MintMainnet = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	MintDevnet  = "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"
)

// Default cluster RPC endpoints (overridable via config set-rpc).
const (
	RPCMainnet = "https://api.mainnet-beta.solana.com"
	RPCDevnet  = "https://api.devnet.solana.com"
)

// Indexer defaults. The API key comes from config.json or SOLPAY_INDEXER_KEY.
const (
	DefaultIndexerBaseURL = "https://api.helius.xyz"
	IndexerPageSize       = 50
)

// DefaultConfirmTimeout bounds the confirmation wait for a submitted
// transfer, in seconds.
const DefaultConfirmTimeout = 60

// Mint returns the USDC mint address for a network mode.
func Mint(networkMode string) string {
	if networkMode == NetworkDevnet {
		return MintDevnet
	}
	return MintMainnet
}

// RPCEndpoint returns the default cluster endpoint for a network mode.
func RPCEndpoint(networkMode string) string {
	if networkMode == NetworkDevnet {
		return RPCDevnet
	}
	return RPCMainnet
}

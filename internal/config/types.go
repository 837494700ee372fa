package config

// Config holds all solpay configuration.
type Config struct {
	NetworkMode    string `json:"network_mode"`     // "mainnet" | "devnet"
	DefaultWallet  string `json:"default_wallet"`
	RPCURL         string `json:"rpc_url"`          // custom RPC endpoint; empty = cluster default
	IndexerBaseURL string `json:"indexer_base_url"`
	IndexerAPIKey  string `json:"indexer_api_key"`
	ConfirmTimeout int    `json:"confirm_timeout"`  // seconds

	// internal: config dir path used for Save()
	configDir string
}

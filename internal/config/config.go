package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	configFile   = "config.json"
	walletsFile  = "wallets.json"
	receiptsFile = "receipts.json"
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.solpay.
// A .env file in the config dir or working dir is loaded first so that
// SOLPAY_INDEXER_KEY can live outside the JSON config.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".solpay")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	// Best effort; a missing .env is the normal case.
	godotenv.Load(filepath.Join(dir, ".env")) //nolint:errcheck
	godotenv.Load()                           //nolint:errcheck

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.NetworkMode == "" {
		cfg.NetworkMode = NetworkMainnet
	}
	if cfg.IndexerBaseURL == "" {
		cfg.IndexerBaseURL = DefaultIndexerBaseURL
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = DefaultConfirmTimeout
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath returns the path of wallets.json.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

// ReceiptsPath returns the path of receipts.json.
func (c *Config) ReceiptsPath() string {
	return filepath.Join(c.configDir, receiptsFile)
}

// ResolveRPC returns the RPC endpoint to use: the configured custom URL if
// set, else the cluster default for the current network mode.
func (c *Config) ResolveRPC() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return RPCEndpoint(c.NetworkMode)
}

// ResolveIndexerKey returns the indexer API key, preferring the environment
// over the persisted config.
func (c *Config) ResolveIndexerKey() string {
	if k := os.Getenv("SOLPAY_INDEXER_KEY"); k != "" {
		return k
	}
	return c.IndexerAPIKey
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		NetworkMode:    NetworkMainnet,
		IndexerBaseURL: DefaultIndexerBaseURL,
		ConfirmTimeout: DefaultConfirmTimeout,
		configDir:      dir,
	}
}

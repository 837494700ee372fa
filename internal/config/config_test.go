package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, NetworkMainnet, cfg.NetworkMode)
	assert.Equal(t, DefaultIndexerBaseURL, cfg.IndexerBaseURL)
	assert.Equal(t, DefaultConfirmTimeout, cfg.ConfirmTimeout)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.NetworkMode = NetworkDevnet
	cfg.DefaultWallet = "alice"
	cfg.RPCURL = "http://localhost:8899"
	cfg.ConfirmTimeout = 30
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, NetworkDevnet, loaded.NetworkMode)
	assert.Equal(t, "alice", loaded.DefaultWallet)
	assert.Equal(t, "http://localhost:8899", loaded.RPCURL)
	assert.Equal(t, 30, loaded.ConfirmTimeout)
}

func TestLoadCorruptConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{oops"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestResolveRPC(t *testing.T) {
	cfg := defaults(t.TempDir())
	assert.Equal(t, RPCMainnet, cfg.ResolveRPC())

	cfg.NetworkMode = NetworkDevnet
	assert.Equal(t, RPCDevnet, cfg.ResolveRPC())

	cfg.RPCURL = "http://localhost:8899"
	assert.Equal(t, "http://localhost:8899", cfg.ResolveRPC())
}

func TestResolveIndexerKeyPrefersEnv(t *testing.T) {
	cfg := defaults(t.TempDir())
	cfg.IndexerAPIKey = "from-config"

	t.Setenv("SOLPAY_INDEXER_KEY", "")
	assert.Equal(t, "from-config", cfg.ResolveIndexerKey())

	t.Setenv("SOLPAY_INDEXER_KEY", "from-env")
	assert.Equal(t, "from-env", cfg.ResolveIndexerKey())
}

func TestMintPerNetwork(t *testing.T) {
	assert.Equal(t, MintMainnet, Mint(NetworkMainnet))
	assert.Equal(t, MintDevnet, Mint(NetworkDevnet))
	assert.Equal(t, MintMainnet, Mint("anything-else"))
}

package chain

import (
	"testing"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestExplorerURLMainnet(t *testing.T) {
	assert.Equal(t,
		"https://solscan.io/tx/5sig",
		ExplorerURL(config.NetworkMainnet, "5sig"),
	)
}

func TestExplorerURLDevnet(t *testing.T) {
	assert.Equal(t,
		"https://solscan.io/tx/5sig?cluster=devnet",
		ExplorerURL(config.NetworkDevnet, "5sig"),
	)
}

func TestExplorerURLEmptySignature(t *testing.T) {
	assert.Equal(t, "", ExplorerURL(config.NetworkMainnet, ""))
}

func TestExplorerURLDeterministic(t *testing.T) {
	a := ExplorerURL(config.NetworkMainnet, "abc")
	b := ExplorerURL(config.NetworkMainnet, "abc")
	assert.Equal(t, a, b)
}

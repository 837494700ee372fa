package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpayhq/solpay/internal/receipt"
)

func TestBuildHistoryTable(t *testing.T) {
	receipts := []receipt.Receipt{
		{
			ID:          "r1",
			Signature:   "5VERYLONGSIGNATURExxxxxxxxxxxxxxxxxxxxxxxxxx",
			CreatedAt:   1700000000000,
			Status:      receipt.StatusConfirmed,
			Direction:   receipt.DirectionSent,
			Amount:      "12.5",
			TokenSymbol: "USDC",
			From:        "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			To:          "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
			ExplorerURL: "https://solscan.io/tx/5VERYLONGSIGNATURExxxxxxxxxxxxxxxxxxxxxxxxxx",
			Note:        "rent",
		},
		{
			ID:          "r2",
			CreatedAt:   1700000100000,
			Status:      receipt.StatusFailed,
			Direction:   receipt.DirectionReceived,
			Amount:      "3",
			TokenSymbol: "USDC",
			From:        "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
			To:          "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		},
	}

	table, rows := buildHistoryTable(receipts)
	require.Len(t, table.Rows, 2)
	require.Len(t, rows, 2)

	rendered := table.Render()
	assert.Contains(t, rendered, "12.5 USDC")
	assert.Contains(t, rendered, "sent")
	assert.Contains(t, rendered, "received")
	assert.Contains(t, rendered, "confirmed")
	assert.Contains(t, rendered, "failed")

	// Interactivity rows carry the full signature, explorer URL, and note.
	assert.Equal(t, receipts[0].Signature, rows[0].Signature)
	assert.Equal(t, receipts[0].ExplorerURL, rows[0].ExplorerURL)
	assert.Equal(t, "rent", rows[0].Note)

	// A receipt that never reached the chain has nothing to open or copy.
	assert.Empty(t, rows[1].Signature)
	assert.Empty(t, rows[1].ExplorerURL)
}

func TestDirectionLabel(t *testing.T) {
	assert.Equal(t, "sent", directionLabel(receipt.DirectionSent))
	assert.Equal(t, "received", directionLabel(receipt.DirectionReceived))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "confirmed", statusLabel(receipt.StatusConfirmed))
	assert.Equal(t, "confirming", statusLabel(receipt.StatusConfirming))
	assert.Equal(t, "failed", statusLabel(receipt.StatusFailed))
	assert.Equal(t, "submitted", statusLabel(receipt.StatusSubmitted))
}

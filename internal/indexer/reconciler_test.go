package indexer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/receipt"
)

const (
	walletAddr  = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	counterAddr = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
)

// fakeFetcher replays a canned batch and counts calls.
type fakeFetcher struct {
	txs   []Transaction
	err   error
	calls int
}

func (f *fakeFetcher) RecentTransactions(context.Context, string, int) ([]Transaction, error) {
	f.calls++
	return f.txs, f.err
}

func known(ui string) Amount { return Amount{UI: ui, Known: true} }

func newTestReconciler(fetcher *fakeFetcher) (*Reconciler, *receipt.MemStore) {
	store := receipt.NewMemStore()
	return NewReconciler(fetcher, store, config.NetworkDevnet, nil), store
}

// ---------------------------------------------------------------------------
// reduction
// ---------------------------------------------------------------------------

func TestSyncReducesMultiLegNet(t *testing.T) {
	mint := config.MintDevnet
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-multi",
		BlockTime: 1700000000,
		Transfers: []TokenTransfer{
			{Mint: mint, Amount: known("10"), From: walletAddr, To: counterAddr},
			{Mint: mint, Amount: known("3"), From: counterAddr, To: walletAddr},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	// net = -10 + 3, so the wallet sent 7 overall
	got := all[0]
	assert.Equal(t, receipt.DeriveID("sig-multi"), got.ID)
	assert.Equal(t, receipt.DirectionSent, got.Direction)
	assert.Equal(t, "7", got.Amount)
	assert.Equal(t, receipt.StatusConfirmed, got.Status)
	assert.Equal(t, walletAddr, got.From)
	assert.Equal(t, counterAddr, got.To)
	assert.Equal(t, int64(1700000000*1000), got.CreatedAt)
	assert.Contains(t, got.ExplorerURL, "sig-multi")
}

func TestSyncInboundTransfer(t *testing.T) {
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-in",
		BlockTime: 1700000000,
		Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("5.25"), From: counterAddr, To: walletAddr},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	require.Len(t, all, 1)
	assert.Equal(t, receipt.DirectionReceived, all[0].Direction)
	assert.Equal(t, "5.25", all[0].Amount)
	assert.Equal(t, counterAddr, all[0].From)
	assert.Equal(t, walletAddr, all[0].To)
}

func TestSyncFailedTransactionKept(t *testing.T) {
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-fail",
		Failed:    true,
		Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("1"), From: walletAddr, To: counterAddr},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	require.Len(t, all, 1)
	assert.Equal(t, receipt.StatusFailed, all[0].Status)
}

func TestSyncSkipsIrrelevantTransactions(t *testing.T) {
	fetcher := &fakeFetcher{txs: []Transaction{
		{Signature: "", Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("1"), From: walletAddr, To: counterAddr},
		}},
		{Signature: "no-legs"},
		{Signature: "wrong-mint", Transfers: []TokenTransfer{
			{Mint: "SomeOtherMint1111111111111111111111111111111", Amount: known("1"), From: walletAddr, To: counterAddr},
		}},
		{Signature: "unknown-amount", Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: Amount{}, From: walletAddr, To: counterAddr},
		}},
		{Signature: "unrelated-parties", Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("1"), From: counterAddr, To: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"},
		}},
	}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	assert.Empty(t, all, "no transaction here involves the wallet in this mint")
}

func TestSyncFallbackLegCountsInbound(t *testing.T) {
	// A leg naming neither side still contributes to the net, but only a leg
	// naming the wallet makes the transaction relevant at all.
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-fallback",
		Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("2"), From: counterAddr, To: walletAddr},
			{Mint: config.MintDevnet, Amount: known("1"), From: "", To: ""},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	require.Len(t, all, 1)
	assert.Equal(t, receipt.DirectionReceived, all[0].Direction)
	assert.Equal(t, "3", all[0].Amount)
}

// ---------------------------------------------------------------------------
// merge semantics
// ---------------------------------------------------------------------------

func TestSyncPreservesLocalNote(t *testing.T) {
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-noted",
		Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("4"), From: walletAddr, To: counterAddr},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	require.NoError(t, store.Upsert(receipt.Receipt{
		ID:        receipt.DeriveID("sig-noted"),
		Signature: "sig-noted",
		CreatedAt: receipt.Now(),
		Network:   config.NetworkDevnet,
		Status:    receipt.StatusConfirming,
		Direction: receipt.DirectionSent,
		Amount:    "4",
		Note:      "coffee",
	}))

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	require.Len(t, all, 1)
	assert.Equal(t, "coffee", all[0].Note, "sync must not erase a locally attached note")
	assert.Equal(t, receipt.StatusConfirmed, all[0].Status, "sync upgrades the status")
}

func TestSyncIdempotentPerSignature(t *testing.T) {
	fetcher := &fakeFetcher{txs: []Transaction{{
		Signature: "sig-same",
		Transfers: []TokenTransfer{
			{Mint: config.MintDevnet, Amount: known("1"), From: walletAddr, To: counterAddr},
		},
	}}}
	r, store := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)
	r.Reset()
	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	assert.Len(t, all, 1, "the same signature reduces to the same receipt id")
}

// ---------------------------------------------------------------------------
// de-duplication guard and failure handling
// ---------------------------------------------------------------------------

func TestSyncDeduplicatesPerAddress(t *testing.T) {
	fetcher := &fakeFetcher{}
	r, _ := newTestReconciler(fetcher)

	r.Sync(context.Background(), walletAddr)
	r.Sync(context.Background(), walletAddr)
	assert.Equal(t, 1, fetcher.calls, "repeat sync for the same address is a no-op")

	r.Sync(context.Background(), counterAddr)
	assert.Equal(t, 2, fetcher.calls, "a different address always syncs")

	r.Reset()
	r.Sync(context.Background(), counterAddr)
	assert.Equal(t, 3, fetcher.calls, "reset re-arms the previous address")
}

func TestSyncSwallowsFetchErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("indexer down")}
	r, store := newTestReconciler(fetcher)

	require.NoError(t, store.Upsert(receipt.Receipt{
		ID:        "local-1",
		CreatedAt: receipt.Now(),
		Network:   config.NetworkDevnet,
		Status:    receipt.StatusConfirmed,
		Direction: receipt.DirectionSent,
		Amount:    "1",
	}))

	r.Sync(context.Background(), walletAddr)

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "existing receipts survive an indexer outage")
}

func TestSyncEmptyBatchIsNoOp(t *testing.T) {
	fetcher := &fakeFetcher{}
	r, store := newTestReconciler(fetcher)

	require.NoError(t, store.Upsert(receipt.Receipt{
		ID:        "local-1",
		CreatedAt: receipt.Now(),
		Network:   config.NetworkDevnet,
		Status:    receipt.StatusConfirmed,
		Direction: receipt.DirectionReceived,
		Amount:    "2",
	}))

	r.Sync(context.Background(), walletAddr)

	all, _ := store.List()
	assert.Len(t, all, 1)
}

// ---------------------------------------------------------------------------
// uiToBase
// ---------------------------------------------------------------------------

func TestUIToBase(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1_000_000, true},
		{"2.5", 2_500_000, true},
		{"-3", -3_000_000, true},
		{"0", 0, true},
		{"0.0", 0, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tt := range tests {
		got, ok := uiToBase(tt.in, 6)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

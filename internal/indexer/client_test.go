package indexer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// constructor
// ---------------------------------------------------------------------------

func TestNewClientNilWithoutKey(t *testing.T) {
	assert.Nil(t, NewClient("https://api.example.com", ""))
	assert.NotNil(t, NewClient("https://api.example.com", "KEY"))
}

// ---------------------------------------------------------------------------
// RecentTransactions
// ---------------------------------------------------------------------------

func TestRecentTransactionsRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("[]")) //nolint:errcheck
	})

	c := NewClient(srv.URL, "SECRET")
	_, err := c.RecentTransactions(context.Background(), "WalletAddr", 50)
	require.NoError(t, err)

	assert.Equal(t, "/v0/addresses/WalletAddr/transactions", gotPath)
	assert.Contains(t, gotQuery, "api-key=SECRET")
	assert.Contains(t, gotQuery, "limit=50")
}

func TestRecentTransactionsParsesSummaries(t *testing.T) {
	payload := `[
		{
			"signature": "sig1",
			"timestamp": 1700000000,
			"tokenTransfers": [
				{"mint": "M1", "tokenAmount": 10.5, "fromUserAccount": "A", "toUserAccount": "B"}
			]
		},
		{
			"signature": "sig2",
			"blockTime": 1700000100,
			"transactionError": {"InstructionError": [0, "Custom"]},
			"tokenTransfers": []
		}
	]`
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload)) //nolint:errcheck
	})

	c := NewClient(srv.URL, "KEY")
	txs, err := c.RecentTransactions(context.Background(), "W", 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "sig1", txs[0].Signature)
	assert.Equal(t, int64(1700000000), txs[0].BlockTime, "timestamp is the blockTime fallback")
	assert.False(t, txs[0].Failed)
	require.Len(t, txs[0].Transfers, 1)
	assert.Equal(t, "M1", txs[0].Transfers[0].Mint)
	assert.Equal(t, "10.5", txs[0].Transfers[0].Amount.UI)
	assert.True(t, txs[0].Transfers[0].Amount.Known)
	assert.Equal(t, "A", txs[0].Transfers[0].From)
	assert.Equal(t, "B", txs[0].Transfers[0].To)

	assert.True(t, txs[1].Failed)
	assert.Equal(t, int64(1700000100), txs[1].BlockTime)
}

func TestRecentTransactionsHTTPError(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	c := NewClient(srv.URL, "BADKEY")
	_, err := c.RecentTransactions(context.Background(), "W", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestRecentTransactionsMalformedBody(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{not an array")) //nolint:errcheck
	})

	c := NewClient(srv.URL, "KEY")
	_, err := c.RecentTransactions(context.Background(), "W", 10)
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// amount shapes
// ---------------------------------------------------------------------------

func TestParseAmountShapes(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		known bool
	}{
		{"number", `10.5`, "10.5", true},
		{"integer", `7`, "7", true},
		{"string", `"2.25"`, "2.25", true},
		{"object tokenAmount number", `{"tokenAmount": 3.5}`, "3.5", true},
		{"object tokenAmount string", `{"tokenAmount": "3.5"}`, "3.5", true},
		{"object uiAmount", `{"uiAmount": 1.25}`, "1.25", true},
		{"object nested amount", `{"amount": "42"}`, "42", true},
		{"null", `null`, "", false},
		{"bool", `true`, "", false},
		{"array", `[1,2]`, "", false},
		{"empty string", `""`, "", false},
		{"empty object", `{}`, "", false},
		{"unrelated object", `{"foo": 1}`, "", false},
	}
	for _, tt := range tests {
		got, known := parseAmount(json.RawMessage(tt.raw), 0)
		assert.Equal(t, tt.known, known, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestAmountDecodesDirectly(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"2.5"`), &a))
	assert.Equal(t, Amount{UI: "2.5", Known: true}, a)

	a = Amount{}
	require.NoError(t, json.Unmarshal([]byte(`null`), &a), "unrecognized shapes never fail the payload")
	assert.False(t, a.Known)
}

func TestTokenAmountFieldPreferred(t *testing.T) {
	raw := `{"signature": "s", "tokenTransfers": [{"mint": "M", "tokenAmount": 5, "amount": "9"}]}`
	var rt rawTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &rt))

	tx := rt.toTransaction()
	require.Len(t, tx.Transfers, 1)
	assert.Equal(t, Amount{UI: "5", Known: true}, tx.Transfers[0].Amount)
}

func TestAmountFieldFallback(t *testing.T) {
	raw := `{"signature": "s", "tokenTransfers": [{"mint": "M", "tokenAmount": null, "amount": "9"}]}`
	var rt rawTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &rt))

	tx := rt.toTransaction()
	require.Len(t, tx.Transfers, 1)
	assert.Equal(t, Amount{UI: "9", Known: true}, tx.Transfers[0].Amount)
}

func TestParseAmountRecursionBounded(t *testing.T) {
	deep := `{"tokenAmount": {"tokenAmount": {"tokenAmount": {"tokenAmount": 1}}}}`
	_, known := parseAmount(json.RawMessage(deep), 0)
	assert.False(t, known, "over-deep nesting is unrecognized, not an infinite loop")
}

// ---------------------------------------------------------------------------
// error indicators and account aliases
// ---------------------------------------------------------------------------

func TestFailedIndicatorShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"clean", `{"signature": "s"}`, false},
		{"null transactionError", `{"signature": "s", "transactionError": null}`, false},
		{"object transactionError", `{"signature": "s", "transactionError": {"code": 1}}`, true},
		{"err value", `{"signature": "s", "err": "InstructionError"}`, true},
		{"error string", `{"signature": "s", "error": "boom"}`, true},
	}
	for _, tt := range tests {
		var rt rawTransaction
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &rt), tt.name)
		assert.Equal(t, tt.want, rt.failed(), tt.name)
	}
}

func TestAccountAliasFallbacks(t *testing.T) {
	raw := `{
		"signature": "s",
		"tokenTransfers": [
			{"mint": "M", "amount": 1, "source": "SRC", "destination": "DST"},
			{"mint": "M", "amount": 1, "fromTokenAccount": "FTA", "toTokenAccount": "TTA"}
		]
	}`
	var rt rawTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &rt))

	tx := rt.toTransaction()
	require.Len(t, tx.Transfers, 2)
	assert.Equal(t, "SRC", tx.Transfers[0].From)
	assert.Equal(t, "DST", tx.Transfers[0].To)
	assert.Equal(t, "FTA", tx.Transfers[1].From)
	assert.Equal(t, "TTA", tx.Transfers[1].To)
}

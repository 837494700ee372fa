package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Transaction is one parsed indexer transaction summary, reduced to what
// reconciliation needs.
type Transaction struct {
	Signature string
	BlockTime int64 // unix seconds; 0 when the indexer omitted it
	Failed    bool
	Transfers []TokenTransfer
}

// TokenTransfer is one token-transfer leg of an indexer transaction.
type TokenTransfer struct {
	Mint     string
	Amount   Amount
	From, To string
}

// Amount is the indexer's amount field, which arrives in one of several
// shapes: a JSON number, a decimal string, or an object wrapping either
// under "tokenAmount" / "uiAmount" / "amount". Anything else decodes to the
// unrecognized variant instead of failing the whole payload.
type Amount struct {
	UI    string // canonical decimal string, human units
	Known bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.UI, a.Known = parseAmount(data, 0)
	return nil
}

// parseAmount probes the accepted amount shapes. depth caps object
// recursion so a hostile payload cannot loop.
func parseAmount(raw json.RawMessage, depth int) (string, bool) {
	if len(raw) == 0 || depth > 2 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return "", false
		}
		return s, true
	case '{':
		var obj struct {
			TokenAmount json.RawMessage `json:"tokenAmount"`
			UIAmount    json.RawMessage `json:"uiAmount"`
			Amount      json.RawMessage `json:"amount"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", false
		}
		for _, inner := range []json.RawMessage{obj.TokenAmount, obj.UIAmount, obj.Amount} {
			if s, ok := parseAmount(inner, depth+1); ok {
				return s, ok
			}
		}
		return "", false
	case '[', 't', 'f', 'n':
		return "", false
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
}

// rawTransaction mirrors the indexer's loosely-typed wire shape. Every
// field is optional; several error-indicator spellings are probed.
type rawTransaction struct {
	Signature        string            `json:"signature"`
	Timestamp        int64             `json:"timestamp"`
	BlockTime        int64             `json:"blockTime"`
	TransactionError json.RawMessage   `json:"transactionError"`
	Err              json.RawMessage   `json:"err"`
	ErrorMessage     string            `json:"error"`
	TokenTransfers   []rawTokenTransfer `json:"tokenTransfers"`
}

type rawTokenTransfer struct {
	Mint             string `json:"mint"`
	TokenAmount      Amount `json:"tokenAmount"`
	Amount           Amount `json:"amount"`
	FromUserAccount  string `json:"fromUserAccount"`
	ToUserAccount    string `json:"toUserAccount"`
	FromTokenAccount string `json:"fromTokenAccount"`
	ToTokenAccount   string `json:"toTokenAccount"`
	Source           string `json:"source"`
	Destination      string `json:"destination"`
}

func (rt *rawTransaction) toTransaction() Transaction {
	tx := Transaction{
		Signature: rt.Signature,
		BlockTime: rt.BlockTime,
		Failed:    rt.failed(),
	}
	if tx.BlockTime == 0 {
		tx.BlockTime = rt.Timestamp
	}
	for _, leg := range rt.TokenTransfers {
		amount := leg.TokenAmount
		if !amount.Known {
			amount = leg.Amount
		}
		tx.Transfers = append(tx.Transfers, TokenTransfer{
			Mint:   leg.Mint,
			Amount: amount,
			From:   firstNonEmpty(leg.FromUserAccount, leg.Source, leg.FromTokenAccount),
			To:     firstNonEmpty(leg.ToUserAccount, leg.Destination, leg.ToTokenAccount),
		})
	}
	return tx
}

// failed probes the error-indicator shapes the indexer has been seen to
// emit: an object, a non-null value, or a plain message string.
func (rt *rawTransaction) failed() bool {
	if rt.ErrorMessage != "" {
		return true
	}
	for _, raw := range []json.RawMessage{rt.TransactionError, rt.Err} {
		if len(raw) > 0 && string(raw) != "null" {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Client fetches parsed transaction history from the indexer's per-address
// endpoint, authenticated by API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates an indexer client. Returns nil when no API key is
// configured — callers treat a nil client as "indexer disabled".
func NewClient(baseURL, apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RecentTransactions returns the most recent limit transaction summaries
// for address, newest first.
func (c *Client) RecentTransactions(ctx context.Context, address string, limit int) ([]Transaction, error) {
	u := fmt.Sprintf("%s/v0/addresses/%s/transactions?api-key=%s&limit=%d",
		c.baseURL, url.PathEscape(address), url.QueryEscape(c.apiKey), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indexer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indexer returned %s", resp.Status)
	}

	var raw []rawTransaction
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing indexer response: %w", err)
	}

	out := make([]Transaction, 0, len(raw))
	for _, rt := range raw {
		out = append(out, rt.toTransaction())
	}
	return out, nil
}

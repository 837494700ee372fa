package indexer

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/solpayhq/solpay/internal/chain"
	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/receipt"
	"github.com/solpayhq/solpay/internal/token"
)

// Fetcher is the slice of the indexer client the reconciler needs.
type Fetcher interface {
	RecentTransactions(ctx context.Context, address string, limit int) ([]Transaction, error)
}

// Reconciler pulls a recent transaction window from the indexer, reduces it
// to net token movements involving one wallet, and merges the result into
// the receipt store. History enrichment is best effort: every failure is
// logged and swallowed, and existing receipts are never corrupted — a sync
// either commits all of its receipts or none.
type Reconciler struct {
	fetcher  Fetcher
	store    receipt.Store
	network  string
	mint     string
	decimals int
	pageSize int
	log      *slog.Logger

	mu         sync.Mutex
	lastSynced string
}

// NewReconciler wires a reconciler for one network's mint.
func NewReconciler(fetcher Fetcher, store receipt.Store, network string, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		fetcher:  fetcher,
		store:    store,
		network:  network,
		mint:     config.Mint(network),
		decimals: config.TokenDecimals,
		pageSize: config.IndexerPageSize,
		log:      log,
	}
}

// Reset clears the de-duplication key so the next Sync runs even for the
// same address. Called after every successful local send.
func (r *Reconciler) Reset() {
	r.mu.Lock()
	r.lastSynced = ""
	r.mu.Unlock()
}

// Sync reconciles the wallet's history. Errors never reach the caller.
func (r *Reconciler) Sync(ctx context.Context, walletAddress string) {
	if err := r.sync(ctx, walletAddress); err != nil {
		r.log.Warn("indexer sync failed", "wallet", walletAddress, "err", err)
	}
}

func (r *Reconciler) sync(ctx context.Context, walletAddress string) error {
	r.mu.Lock()
	if r.lastSynced == walletAddress {
		r.mu.Unlock()
		return nil
	}
	r.lastSynced = walletAddress
	r.mu.Unlock()

	txs, err := r.fetcher.RecentTransactions(ctx, walletAddress, r.pageSize)
	if err != nil {
		return err
	}

	// Parse everything before committing anything; a zero-receipt batch is
	// a no-op, never a wipe.
	var merged []receipt.Receipt
	for _, tx := range txs {
		if rec, ok := r.reduce(tx, walletAddress); ok {
			merged = append(merged, rec)
		}
	}
	for _, rec := range merged {
		if err := r.store.Upsert(rec); err != nil {
			return err
		}
	}

	r.log.Debug("indexer sync complete", "wallet", walletAddress, "fetched", len(txs), "merged", len(merged))
	return nil
}

// reduce folds one indexer transaction into a receipt for walletAddress,
// or reports false when the transaction is irrelevant.
func (r *Reconciler) reduce(tx Transaction, walletAddress string) (receipt.Receipt, bool) {
	if tx.Signature == "" || len(tx.Transfers) == 0 {
		return receipt.Receipt{}, false
	}

	var net int64
	matched := false
	for _, leg := range tx.Transfers {
		if leg.Mint != r.mint || !leg.Amount.Known {
			continue
		}
		amt, ok := uiToBase(leg.Amount.UI, r.decimals)
		if !ok {
			continue
		}
		switch walletAddress {
		case leg.From:
			net -= amt
			matched = true
		case leg.To:
			net += amt
			matched = true
		default:
			// Leg touching neither side: counted as inbound, best effort.
			net += amt
		}
	}
	if !matched {
		return receipt.Receipt{}, false
	}

	direction := receipt.DirectionReceived
	if net < 0 {
		direction = receipt.DirectionSent
		net = -net
	}

	createdAt := tx.BlockTime * 1000
	if createdAt <= 0 {
		createdAt = receipt.Now()
	}

	status := receipt.StatusConfirmed
	if tx.Failed {
		status = receipt.StatusFailed
	}

	from, to := walletAddress, ""
	if direction == receipt.DirectionReceived {
		from, to = "", walletAddress
	}
	// Prefer the counterparty recorded on the first matching leg.
	for _, leg := range tx.Transfers {
		if leg.Mint != r.mint {
			continue
		}
		if direction == receipt.DirectionSent && leg.From == walletAddress {
			to = leg.To
			break
		}
		if direction == receipt.DirectionReceived && leg.To == walletAddress {
			from = leg.From
			break
		}
	}

	return receipt.Receipt{
		ID:          receipt.DeriveID(tx.Signature),
		Signature:   tx.Signature,
		CreatedAt:   createdAt,
		Network:     r.network,
		Status:      status,
		Direction:   direction,
		Amount:      token.FormatBaseUnits(uint64(net), r.decimals),
		TokenSymbol: config.TokenSymbol,
		From:        from,
		To:          to,
		ExplorerURL: chain.ExplorerURL(r.network, tx.Signature),
	}, true
}

// uiToBase converts a decimal-string amount (optionally signed) into base
// units. Unparseable input reports false rather than erroring — the caller
// skips the leg.
func uiToBase(s string, decimals int) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return 0, false
	}

	v, err := token.ToBaseUnits(s, decimals)
	switch err {
	case nil:
	case token.ErrNonPositiveAmount:
		return 0, true // zero-value legs are valid, they just move nothing
	default:
		return 0, false
	}
	if v > uint64(1)<<62 {
		return 0, false
	}
	out := int64(v)
	if neg {
		out = -out
	}
	return out, true
}

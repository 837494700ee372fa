package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/solpayhq/solpay/internal/chain"
	"github.com/solpayhq/solpay/internal/config"
	"github.com/solpayhq/solpay/internal/receipt"
)

// Phase is the UI-visible progress of one send attempt. Phases are not
// receipt statuses: "signing" in particular is never persisted — a rejected
// signature is stored as a failed receipt, not a distinct state.
type Phase string

const (
	PhaseSigning    Phase = "signing"
	PhaseConfirming Phase = "confirming"
)

// Hooks are the lifecycle's collaborators, all optional.
type Hooks struct {
	// OnPhase is invoked when the attempt enters a new UI-visible phase.
	OnPhase func(Phase)
	// OnConfirmed fires after a confirmed receipt is persisted; the CLI
	// uses it to refresh the displayed balance.
	OnConfirmed func()
	// ResetSync clears the indexer reconciler's de-duplication key so the
	// just-sent transfer is picked up on the next sync.
	ResetSync func()
}

// SendParams describes one user-initiated send. The caller has already
// validated the addresses and confirmed the action; the only re-validation
// below is the amount decimalization inside the executor.
type SendParams struct {
	From     solana.PublicKey
	To       solana.PublicKey
	AmountUI string
	Note     string
	Signer   TransactionSigner
}

// Lifecycle drives a single send attempt from signing through confirmed or
// failed, persisting every transition to the receipt store before moving
// on, so an interrupted run never loses the last known status. Exactly one
// receipt id belongs to one attempt, and its status only moves forward.
type Lifecycle struct {
	store          receipt.Store
	client         chain.Client
	executor       *Executor
	network        string
	mint           solana.PublicKey
	decimals       int
	confirmTimeout time.Duration
	hooks          Hooks
	log            *slog.Logger
}

// NewLifecycle wires a lifecycle controller.
func NewLifecycle(store receipt.Store, client chain.Client, network string, mint solana.PublicKey, confirmTimeout time.Duration, hooks Hooks, log *slog.Logger) *Lifecycle {
	if log == nil {
		log = slog.Default()
	}
	if confirmTimeout <= 0 {
		confirmTimeout = time.Duration(config.DefaultConfirmTimeout) * time.Second
	}
	return &Lifecycle{
		store:          store,
		client:         client,
		executor:       NewExecutor(client),
		network:        network,
		mint:           mint,
		decimals:       config.TokenDecimals,
		confirmTimeout: confirmTimeout,
		hooks:          hooks,
		log:            log,
	}
}

// Send executes one transfer attempt. The returned receipt reflects the
// final persisted state; the error, when non-nil, is already phrased for
// the user.
func (l *Lifecycle) Send(ctx context.Context, p SendParams) (*receipt.Receipt, error) {
	// The draft is persisted before any signature is requested so that
	// even a rejection leaves an audit trail.
	r := receipt.Receipt{
		ID:          receipt.NewLocalID(),
		CreatedAt:   receipt.Now(),
		Network:     l.network,
		Status:      receipt.StatusSubmitted,
		Direction:   receipt.DirectionSent,
		Amount:      strings.TrimSpace(p.AmountUI),
		TokenSymbol: config.TokenSymbol,
		From:        p.From.String(),
		To:          p.To.String(),
		Note:        p.Note,
	}
	if err := l.store.Upsert(r); err != nil {
		return nil, fmt.Errorf("recording transfer: %w", err)
	}

	l.phase(PhaseSigning)

	sub, err := l.executor.Submit(ctx, SubmitParams{
		Sender:    p.From,
		Recipient: p.To,
		Mint:      l.mint,
		AmountUI:  p.AmountUI,
		Decimals:  l.decimals,
		Signer:    p.Signer,
	})
	if err != nil {
		return l.fail(r, err)
	}

	r.Signature = sub.Signature.String()
	r.Status = receipt.StatusConfirming
	r.ExplorerURL = chain.ExplorerURL(l.network, r.Signature)
	if err := l.store.Upsert(r); err != nil {
		return l.fail(r, err)
	}

	l.phase(PhaseConfirming)

	confirmCtx, cancel := context.WithTimeout(ctx, l.confirmTimeout)
	defer cancel()
	if err := l.client.ConfirmTransaction(confirmCtx, sub.Signature, sub.Finality.LastValidBlockHeight); err != nil {
		return l.fail(r, err)
	}

	r.Status = receipt.StatusConfirmed
	if err := l.store.Upsert(r); err != nil {
		// The transfer is on chain; a storage hiccup must not rewrite it
		// as failed. The next sync can repair the stored record.
		if l.hooks.ResetSync != nil {
			l.hooks.ResetSync()
		}
		l.log.Warn("persisting confirmed receipt", "id", r.ID, "err", err)
		return &r, fmt.Errorf("transfer confirmed, but recording it failed: %w", err)
	}

	if l.hooks.OnConfirmed != nil {
		l.hooks.OnConfirmed()
	}
	if l.hooks.ResetSync != nil {
		l.hooks.ResetSync()
	}

	l.log.Info("transfer confirmed",
		"signature", r.Signature,
		"amount", r.Amount,
		"to", r.To,
	)
	return &r, nil
}

// fail marks the attempt's receipt failed, persists it, and returns the
// cause phrased for the user. Signing rejection, submission error, and
// confirmation failure all end here — they differ only in message.
func (l *Lifecycle) fail(r receipt.Receipt, cause error) (*receipt.Receipt, error) {
	r.Status = receipt.StatusFailed
	if err := l.store.Upsert(r); err != nil {
		l.log.Warn("persisting failed receipt", "id", r.ID, "err", err)
	}
	l.log.Warn("transfer failed", "id", r.ID, "err", cause)
	return &r, fmt.Errorf("transfer failed: %w", cause)
}

func (l *Lifecycle) phase(p Phase) {
	if l.hooks.OnPhase != nil {
		l.hooks.OnPhase(p)
	}
}

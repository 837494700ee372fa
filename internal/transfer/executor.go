package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	ata "github.com/gagliardetto/solana-go/programs/associated-token-account"
	tokenprog "github.com/gagliardetto/solana-go/programs/token"

	"github.com/solpayhq/solpay/internal/chain"
	"github.com/solpayhq/solpay/internal/token"
)

// ErrSenderAccountMissing means the sender has no associated token account
// for the mint. There is no implicit provisioning for the sender — only the
// recipient's account is created on the fly.
var ErrSenderAccountMissing = errors.New("sender has no token account for this mint")

// TransactionSigner is the signing capability injected into Submit. In the
// CLI it is backed by the OS keychain; a rejection surfaces as an error.
type TransactionSigner interface {
	SignTransaction(tx *solana.Transaction) error
}

// SubmitParams describes one token transfer to build and submit.
type SubmitParams struct {
	Sender    solana.PublicKey
	Recipient solana.PublicKey
	Mint      solana.PublicKey
	AmountUI  string
	Decimals  int
	Signer    TransactionSigner
}

// Submission is the handle returned by a successful submit: the signature
// plus the finality context needed to poll for confirmation later.
type Submission struct {
	Signature solana.Signature
	Finality  chain.FinalityContext
}

// Executor builds and submits token transfers. It never waits for
// confirmation and never retries — both are the caller's concern.
type Executor struct {
	client chain.Client
}

// NewExecutor creates an executor on top of a chain client.
func NewExecutor(client chain.Client) *Executor {
	return &Executor{client: client}
}

// Submit builds a single atomic transaction moving p.AmountUI of the mint
// from sender to recipient and sends it to the network.
//
// Both parties' token sub-accounts are derived deterministically from the
// (owner, mint) pair. The sender's must already exist. A missing recipient
// account gets a creation instruction, funded by the sender, ahead of the
// transfer in the same submission — all or nothing. The transfer itself is
// a checked transfer carrying the expected decimal count, so a wrong
// decimal assumption fails on chain instead of moving the wrong magnitude.
func (e *Executor) Submit(ctx context.Context, p SubmitParams) (*Submission, error) {
	amount, err := token.ToBaseUnits(p.AmountUI, p.Decimals)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", p.AmountUI, err)
	}

	senderATA, _, err := solana.FindAssociatedTokenAddress(p.Sender, p.Mint)
	if err != nil {
		return nil, fmt.Errorf("deriving sender token account: %w", err)
	}
	recipientATA, _, err := solana.FindAssociatedTokenAddress(p.Recipient, p.Mint)
	if err != nil {
		return nil, fmt.Errorf("deriving recipient token account: %w", err)
	}

	senderExists, err := e.client.AccountExists(ctx, senderATA)
	if err != nil {
		return nil, fmt.Errorf("checking sender token account: %w", err)
	}
	if !senderExists {
		return nil, ErrSenderAccountMissing
	}

	var instrs []solana.Instruction

	recipientExists, err := e.client.AccountExists(ctx, recipientATA)
	if err != nil {
		return nil, fmt.Errorf("checking recipient token account: %w", err)
	}
	if !recipientExists {
		instrs = append(instrs, ata.NewCreateInstruction(p.Sender, p.Recipient, p.Mint).Build())
	}

	instrs = append(instrs, tokenprog.NewTransferCheckedInstruction(
		amount,
		uint8(p.Decimals),
		senderATA,
		p.Mint,
		recipientATA,
		p.Sender,
		nil,
	).Build())

	// Fresh finality context immediately before submission; the caller
	// needs it to bound confirmation polling.
	fctx, err := e.client.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(instrs, fctx.Blockhash, solana.TransactionPayer(p.Sender))
	if err != nil {
		return nil, fmt.Errorf("building transaction: %w", err)
	}

	if err := p.Signer.SignTransaction(tx); err != nil {
		return nil, fmt.Errorf("signing: %w", err)
	}

	sig, err := e.client.SendTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	return &Submission{Signature: sig, Finality: fctx}, nil
}

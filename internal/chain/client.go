package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Errors surfaced by confirmation polling.
var (
	// ErrTransactionFailed means the transaction landed on chain but its
	// execution errored.
	ErrTransactionFailed = errors.New("transaction failed on chain")
	// ErrBlockhashExpired means the chain moved past the transaction's
	// validity window without the signature landing.
	ErrBlockhashExpired = errors.New("blockhash expired before confirmation")
)

// FinalityContext is the short-lived token required to submit and later
// confirm a transaction: a recent blockhash plus the block height up to
// which it remains valid.
type FinalityContext struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

// Client is the chain capability the transfer layer depends on. Every call
// is a potentially-failing network operation and honors ctx.
type Client interface {
	LatestBlockhash(ctx context.Context) (FinalityContext, error)
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	// ConfirmTransaction blocks until sig is finalized, fails, or the
	// finality window given by lastValidHeight closes.
	ConfirmTransaction(ctx context.Context, sig solana.Signature, lastValidHeight uint64) error
	TokenAccountBalance(ctx context.Context, account solana.PublicKey) (*rpc.UiTokenAmount, error)
}

// RPCClient implements Client on top of the Solana JSON-RPC API.
type RPCClient struct {
	rpc          *rpc.Client
	pollInterval time.Duration
}

// NewRPCClient creates a client for the given RPC endpoint.
func NewRPCClient(endpoint string) *RPCClient {
	return &RPCClient{
		rpc:          rpc.New(endpoint),
		pollInterval: 2 * time.Second,
	}
}

func (c *RPCClient) LatestBlockhash(ctx context.Context) (FinalityContext, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return FinalityContext{}, fmt.Errorf("fetching blockhash: %w", err)
	}
	return FinalityContext{
		Blockhash:            out.Value.Blockhash,
		LastValidBlockHeight: out.Value.LastValidBlockHeight,
	}, nil
}

func (c *RPCClient) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	out, err := c.rpc.GetAccountInfo(ctx, account)
	if errors.Is(err, rpc.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fetching account %s: %w", account, err)
	}
	return out.Value != nil, nil
}

func (c *RPCClient) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("submitting transaction: %w", err)
	}
	return sig, nil
}

// ConfirmTransaction polls signature statuses until the transaction is
// finalized. The caller bounds the wait via ctx; independently, once the
// chain's block height passes lastValidHeight the blockhash can never land
// and polling stops with ErrBlockhashExpired.
func (c *RPCClient) ConfirmTransaction(ctx context.Context, sig solana.Signature, lastValidHeight uint64) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err == nil && len(out.Value) > 0 && out.Value[0] != nil {
			st := out.Value[0]
			if st.Err != nil {
				return fmt.Errorf("%w: %v", ErrTransactionFailed, st.Err)
			}
			if st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}

		if height, herr := c.rpc.GetBlockHeight(ctx, rpc.CommitmentFinalized); herr == nil && height > lastValidHeight {
			return ErrBlockhashExpired
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("awaiting confirmation: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *RPCClient) TokenAccountBalance(ctx context.Context, account solana.PublicKey) (*rpc.UiTokenAmount, error) {
	out, err := c.rpc.GetTokenAccountBalance(ctx, account, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("fetching token balance: %w", err)
	}
	return out.Value, nil
}

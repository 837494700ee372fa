// Package paylink builds and parses Solana Pay transfer request URLs, the
// interchange format wallets scan to pre-fill a token payment.
package paylink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/solpayhq/solpay/internal/token"
)

const scheme = "solana"

var (
	ErrInvalidScheme    = errors.New("payment link must use the solana: scheme")
	ErrInvalidRecipient = errors.New("payment link recipient is not a valid address")
	ErrInvalidAmount    = errors.New("payment link amount is not a valid decimal")
)

// Request is one decoded transfer request.
type Request struct {
	Recipient string
	Amount    string // optional, human units
	SPLToken  string // optional mint address; empty means native SOL
	Memo      string // optional
}

// Build renders the request as a solana: URL.
func (r Request) Build() (string, error) {
	if !token.IsValidAddress(r.Recipient) {
		return "", ErrInvalidRecipient
	}

	q := url.Values{}
	if r.Amount != "" {
		if _, err := token.ToBaseUnits(r.Amount, token.MaxDecimals); err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidAmount, r.Amount)
		}
		q.Set("amount", r.Amount)
	}
	if r.SPLToken != "" {
		if !token.IsValidAddress(r.SPLToken) {
			return "", fmt.Errorf("%w: %s", ErrInvalidRecipient, r.SPLToken)
		}
		q.Set("spl-token", r.SPLToken)
	}
	if r.Memo != "" {
		q.Set("memo", r.Memo)
	}

	u := scheme + ":" + r.Recipient
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u, nil
}

// Parse decodes a solana: URL into a Request, validating recipient, mint and
// amount. The recipient is the URL's opaque part, per the Solana Pay spec.
func Parse(raw string) (Request, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Request{}, fmt.Errorf("parsing payment link: %w", err)
	}
	if u.Scheme != scheme {
		return Request{}, ErrInvalidScheme
	}

	recipient := u.Opaque
	if recipient == "" {
		// Tolerate the solana://<addr> misspelling some generators emit.
		recipient = u.Host
	}
	if !token.IsValidAddress(recipient) {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}

	q := u.Query()
	req := Request{
		Recipient: recipient,
		Amount:    q.Get("amount"),
		SPLToken:  q.Get("spl-token"),
		Memo:      q.Get("memo"),
	}
	if req.Amount != "" {
		if _, err := token.ToBaseUnits(req.Amount, token.MaxDecimals); err != nil {
			return Request{}, fmt.Errorf("%w: %s", ErrInvalidAmount, req.Amount)
		}
	}
	if req.SPLToken != "" && !token.IsValidAddress(req.SPLToken) {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidRecipient, req.SPLToken)
	}
	return req, nil
}

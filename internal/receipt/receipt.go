package receipt

import (
	"time"

	"github.com/google/uuid"
)

// Receipt statuses. Forward-only for a given send attempt:
// submitted → confirming → confirmed | failed (or submitted → failed).
// There is deliberately no "signing" status — a rejected signature is
// recorded as failed, not as a distinct stored state.
const (
	StatusSubmitted  = "submitted"
	StatusConfirming = "confirming"
	StatusConfirmed  = "confirmed"
	StatusFailed     = "failed"
)

// Transfer directions.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Receipt is the durable local record of one transfer attempt or one
// transfer event observed via the indexer.
type Receipt struct {
	ID          string `json:"id"`
	Signature   string `json:"signature,omitempty"` // empty until the network accepts the submission
	CreatedAt   int64  `json:"createdAt"`           // unix milliseconds
	Network     string `json:"network"`             // "mainnet" | "devnet"
	Status      string `json:"status"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"` // human units, decimal string
	TokenSymbol string `json:"tokenSymbol"`
	From        string `json:"from"`
	To          string `json:"to"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
	Note        string `json:"note,omitempty"`
}

// NewLocalID generates a random id for a locally-originated send.
func NewLocalID() string {
	return uuid.NewString()
}

// DeriveID builds the deterministic id for an indexer-observed transfer,
// keyed by chain signature so repeated syncs overwrite instead of
// duplicating.
func DeriveID(signature string) string {
	return "idx-" + signature
}

// Terminal reports whether the status ends a send attempt.
func Terminal(status string) bool {
	return status == StatusConfirmed || status == StatusFailed
}

// ValidStatus reports whether s is one of the four receipt statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusConfirming, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

// valid is the load-time record check: malformed persisted entries are
// dropped, never fatal.
func (r *Receipt) valid() bool {
	if r.ID == "" || !ValidStatus(r.Status) {
		return false
	}
	switch r.Direction {
	case DirectionSent, DirectionReceived, "":
	default:
		return false
	}
	return true
}

// Now returns the current time in unix milliseconds, the Receipt clock.
func Now() int64 {
	return time.Now().UnixMilli()
}

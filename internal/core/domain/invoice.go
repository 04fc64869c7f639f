package domain

import (
	"strconv"
	"strings"
)

// MessageDelimiter separates fields in a canonical message.
const MessageDelimiter = "|"

// Invoice is a priced, time-boxed request for payment. It is immutable once issued
// and valid until TS + TTL.
type Invoice struct {
	Feature  string `json:"feature"`
	Amount   string `json:"amount"` // decimal string, kept verbatim in the signed message
	Unit     string `json:"unit"`
	TTL      int64  `json:"ttl"` // seconds
	Nonce    string `json:"nonce"`
	MerkleID string `json:"merkleId"`
	TS       int64  `json:"ts"` // epoch seconds
	Wallet   string `json:"wallet,omitempty"`
}

// CanonicalMessage returns the exact string a wallet signs.
// Format: FEATURE|AMOUNT|UNIT|NONCE|MERKLE_ID|TS
func (i *Invoice) CanonicalMessage() string {
	return joinCanonical(
		i.Feature,
		i.Amount,
		i.Unit,
		i.Nonce,
		i.MerkleID,
		strconv.FormatInt(i.TS, 10),
	)
}

// ExpiresAt is the last epoch second at which the invoice is still fresh. Callers
// bound TS and TTL first; unchecked values can overflow.
func (i *Invoice) ExpiresAt() int64 {
	return i.TS + i.TTL
}

// IsFresh reports whether the invoice can still be settled at now (epoch seconds).
func (i *Invoice) IsFresh(now int64) bool {
	return isFresh(i.TS, i.TTL, now)
}

// isFresh is now-ts <= ttl rearranged so that neither side can overflow.
func isFresh(ts, ttl, now int64) bool {
	if ttl < 0 {
		return false
	}
	return ts >= now-ttl
}

func joinCanonical(fields ...string) string {
	return strings.Join(fields, MessageDelimiter)
}

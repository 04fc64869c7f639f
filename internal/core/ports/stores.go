package ports

import (
	"context"

	"micropay-gateway/internal/core/domain"
)

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

// NonceLedger records nonces consumed by a successful settlement. Expiries are epoch
// seconds and inclusive: an entry is live while expireAt >= now. Expired entries are
// logically absent even before EvictExpired removes them.
type NonceLedger interface {
	// Seen reports whether nonce has a live entry.
	Seen(ctx context.Context, nonce string) (bool, error)
	// Reserve atomically records nonce unless it already has a live entry.
	// Returns true if this call won the reservation.
	Reserve(ctx context.Context, nonce string, expireAt int64) (bool, error)
	// Mark records or overwrites the expiry of nonce unconditionally. Settlement
	// never calls it; it consumes nonces through Reserve.
	Mark(ctx context.Context, nonce string, expireAt int64) error
	// EvictExpired drops expired entries and returns how many were removed.
	EvictExpired(ctx context.Context) (int, error)
}

// ReceiptArchive is a bounded most-recent-first history of issued receipts.
// It is informational only and never consulted for authorization.
type ReceiptArchive interface {
	Record(receipt domain.Receipt)
	// Recent returns up to limit receipts, newest first. limit <= 0 returns all.
	Recent(limit int) []domain.Receipt
	Len() int
}

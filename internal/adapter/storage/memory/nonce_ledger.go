package memory

import (
	"context"
	"sync"
	"time"
)

// NonceLedger implements ports.NonceLedger in process memory.
// Entries live until expireAt (inclusive, epoch seconds).
type NonceLedger struct {
	mu      sync.RWMutex
	entries map[string]int64
	now     func() time.Time
}

// NewNonceLedger creates an empty in-memory ledger using the wall clock.
func NewNonceLedger() *NonceLedger {
	return NewNonceLedgerWithClock(time.Now)
}

// NewNonceLedgerWithClock creates a ledger that reads time from now.
func NewNonceLedgerWithClock(now func() time.Time) *NonceLedger {
	return &NonceLedger{
		entries: make(map[string]int64),
		now:     now,
	}
}

// Seen reports whether nonce has a live entry.
func (l *NonceLedger) Seen(_ context.Context, nonce string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expireAt, ok := l.entries[nonce]
	return ok && expireAt >= l.now().Unix(), nil
}

// Reserve records nonce unless a live entry exists. The check and the insert
// happen under one lock so concurrent settlements of one nonce cannot both win.
func (l *NonceLedger) Reserve(_ context.Context, nonce string, expireAt int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if current, ok := l.entries[nonce]; ok && current >= l.now().Unix() {
		return false, nil
	}
	l.entries[nonce] = expireAt
	return true, nil
}

// Mark records or overwrites the expiry of nonce.
func (l *NonceLedger) Mark(_ context.Context, nonce string, expireAt int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[nonce] = expireAt
	return nil
}

// EvictExpired removes every entry whose expiry has passed.
func (l *NonceLedger) EvictExpired(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().Unix()
	removed := 0
	for nonce, expireAt := range l.entries {
		if expireAt < now {
			delete(l.entries, nonce)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, live or not yet evicted.
func (l *NonceLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

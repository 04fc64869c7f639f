package memory

import (
	"sync"

	"micropay-gateway/internal/core/domain"
)

// DefaultArchiveCapacity bounds the receipt history.
const DefaultArchiveCapacity = 500

// ReceiptArchive implements ports.ReceiptArchive as a bounded newest-first list.
type ReceiptArchive struct {
	mu       sync.RWMutex
	items    []domain.Receipt
	capacity int
}

// NewReceiptArchive creates an archive holding at most capacity receipts.
// A non-positive capacity falls back to DefaultArchiveCapacity.
func NewReceiptArchive(capacity int) *ReceiptArchive {
	if capacity <= 0 {
		capacity = DefaultArchiveCapacity
	}
	return &ReceiptArchive{
		items:    make([]domain.Receipt, 0, capacity),
		capacity: capacity,
	}
}

// Record inserts receipt at the front and drops the oldest entries past capacity.
func (a *ReceiptArchive) Record(receipt domain.Receipt) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.items) < a.capacity {
		a.items = append(a.items, domain.Receipt{})
	}
	copy(a.items[1:], a.items[:len(a.items)-1])
	a.items[0] = receipt
}

// Recent returns a copy of up to limit receipts, newest first.
func (a *ReceiptArchive) Recent(limit int) []domain.Receipt {
	a.mu.RLock()
	defer a.mu.RUnlock()

	n := len(a.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Receipt, n)
	copy(out, a.items[:n])
	return out
}

// Len returns the number of archived receipts.
func (a *ReceiptArchive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}

package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"micropay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// syncBuffer is a goroutine-safe writer for capturing log output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditService_Log_WritesEntry(t *testing.T) {
	out := &syncBuffer{}
	svc := NewAuditService(zerolog.New(out))

	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionSettled,
		ResourceType: "invoice",
		ResourceID:   "3f1c0a9e7b6d4c2a8e5f1b0d9c8a7e6f",
		Details:      `{"status":200}`,
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"action":"SETTLED"`)
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), `"details":{"status":200}`)
	assert.Contains(t, out.String(), `"resource_id":"3f1c0a9e7b6d4c2a8e5f1b0d9c8a7e6f"`)
}

func TestAuditService_Log_EmptyDetailsAndNil(t *testing.T) {
	out := &syncBuffer{}
	svc := NewAuditService(zerolog.New(out))

	// Should not panic
	svc.Log(context.Background(), nil)
	svc.Log(context.Background(), &domain.AuditLog{
		ID:        uuid.New(),
		Action:    domain.AuditActionResourceAccess,
		IPAddress: "127.0.0.1",
		CreatedAt: time.Now(),
	})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), `"details":{}`)
	}, 2*time.Second, 10*time.Millisecond)
}

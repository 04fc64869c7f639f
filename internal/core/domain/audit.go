package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionInvoiceIssued   AuditAction = "INVOICE_ISSUED"
	AuditActionSettled         AuditAction = "SETTLED"
	AuditActionReceiptVerified AuditAction = "RECEIPT_VERIFIED"
	AuditActionResourceAccess  AuditAction = "RESOURCE_ACCESS"
)

// AuditLog records a single audited protocol event.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

package ports

import (
	"context"
	"time"

	"micropay-gateway/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// ProofVerifier checks a wallet signature over a canonical message.
// Implementations never panic or error on malformed input; they return false.
type ProofVerifier interface {
	Verify(kind domain.WalletKind, message, account, signature string) bool
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// AuditService records protocol events.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// GatewayMetrics receives protocol counters. Outcomes are apperror codes or "ok".
type GatewayMetrics interface {
	InvoiceIssued(feature string)
	SettlementObserved(kind string, outcome string, elapsed time.Duration)
	ReceiptVerified(outcome string)
	NoncesEvicted(n int)
	ArchiveSize(n int)
}

// --- Service Ports (Business Logic) ---

// GatewayService is the settlement protocol: one instance owns the nonce ledger
// and the receipt archive for the life of the process.
type GatewayService interface {
	PublicKey() string
	IssueInvoice(ctx context.Context, req InvoiceRequest) (*IssuedInvoice, error)
	Settle(ctx context.Context, invoice *domain.Invoice, proof *domain.WalletProof) (*domain.Receipt, error)
	VerifyReceipt(ctx context.Context, receipt *domain.Receipt) (*ReceiptVerification, error)
	RecentReceipts(limit int) []domain.Receipt
}

// InvoiceRequest holds the optional invoice parameters. Zero values take configured defaults.
type InvoiceRequest struct {
	Feature string
	Amount  string
	Unit    string
	TTLSec  int64
	Wallet  string
}

// IssuedInvoice is everything a wallet needs to pay without calling the gateway again.
type IssuedInvoice struct {
	Invoice       domain.Invoice
	MessageToSign string
	GatewayPubkey string
}

// ReceiptVerification is the result of a successful receipt check. ReplayProtected is
// advisory: it reports whether the nonce is still live in the ledger.
type ReceiptVerification struct {
	ReplayProtected bool
}

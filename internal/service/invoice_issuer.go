package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"micropay-gateway/config"
	"micropay-gateway/internal/core/domain"
	"micropay-gateway/internal/core/ports"
	"micropay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const merkleIDBytes = 32

// InvoiceIssuer creates priced, time-boxed invoices. It never touches the nonce ledger.
type InvoiceIssuer struct {
	defaults config.InvoiceConfig
	identity *GatewayIdentity
	now      func() time.Time
}

// NewInvoiceIssuer creates an issuer that fills omitted fields from defaults.
func NewInvoiceIssuer(defaults config.InvoiceConfig, identity *GatewayIdentity, now func() time.Time) *InvoiceIssuer {
	if now == nil {
		now = time.Now
	}
	return &InvoiceIssuer{defaults: defaults, identity: identity, now: now}
}

// MaxTTL is the longest lifetime, in seconds, this issuer grants an invoice.
func (i *InvoiceIssuer) MaxTTL() int64 {
	if i.defaults.MaxTTL > 0 {
		return i.defaults.MaxTTL
	}
	return i.defaults.TTLSec
}

// Issue builds a fresh invoice from req and returns it with the message a wallet must sign.
func (i *InvoiceIssuer) Issue(req ports.InvoiceRequest) (*ports.IssuedInvoice, error) {
	feature := firstNonEmpty(req.Feature, i.defaults.Feature)
	unit := firstNonEmpty(req.Unit, i.defaults.Unit)

	amount, err := normalizeAmount(firstNonEmpty(req.Amount, i.defaults.Amount))
	if err != nil {
		return nil, err
	}

	ttl := req.TTLSec
	if ttl == 0 {
		ttl = i.defaults.TTLSec
	}
	if ttl < 0 || ttl > i.MaxTTL() {
		return nil, apperror.Validation(fmt.Sprintf("ttlSec must be between 1 and %d", i.MaxTTL()))
	}

	wallet := firstNonEmpty(req.Wallet, i.defaults.Wallet)
	if domain.ParseWalletKind(wallet) == domain.WalletKindUnknown {
		return nil, apperror.Validation(fmt.Sprintf("unsupported wallet kind %q", wallet))
	}

	merkleID, err := randomHex(merkleIDBytes)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating merkle id: %w", err))
	}

	inv := domain.Invoice{
		Feature:  feature,
		Amount:   amount,
		Unit:     unit,
		TTL:      ttl,
		Nonce:    newNonce(),
		MerkleID: merkleID,
		TS:       i.now().Unix(),
		Wallet:   wallet,
	}

	return &ports.IssuedInvoice{
		Invoice:       inv,
		MessageToSign: inv.CanonicalMessage(),
		GatewayPubkey: i.identity.PublicKeyBase64(),
	}, nil
}

// newNonce returns a random UUIDv4 without separators: 32 lowercase hex characters.
func newNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// normalizeAmount accepts a positive decimal string and returns its canonical form.
func normalizeAmount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", apperror.Validation(fmt.Sprintf("amount %q is not a decimal number", raw))
	}
	if !d.IsPositive() {
		return "", apperror.Validation("amount must be positive")
	}
	return d.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

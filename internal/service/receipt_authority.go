package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"time"

	"micropay-gateway/internal/core/domain"
	"micropay-gateway/pkg/apperror"
)

// ReceiptAuthority signs receipts with the gateway identity.
type ReceiptAuthority struct {
	identity *GatewayIdentity
}

// NewReceiptAuthority creates a new ReceiptAuthority.
func NewReceiptAuthority(identity *GatewayIdentity) *ReceiptAuthority {
	return &ReceiptAuthority{identity: identity}
}

// Issue builds and signs the receipt for a settled invoice.
func (a *ReceiptAuthority) Issue(inv *domain.Invoice, payer string, settledAt int64) *domain.Receipt {
	receipt := domain.NewReceipt(inv, payer, a.identity.PublicKeyBase64(), settledAt)
	sig := a.identity.Sign([]byte(receipt.CanonicalMessage()))
	receipt.Sig = base64.StdEncoding.EncodeToString(sig)
	return receipt
}

// Verify checks receipt against this gateway's key at now.
func (a *ReceiptAuthority) Verify(receipt *domain.Receipt, now time.Time) error {
	return VerifyReceiptSignature(receipt, a.identity.PublicKeyBase64(), now)
}

// VerifyReceiptSignature checks a receipt offline: it must be fresh, name
// trustedPubkey as its signer and carry a valid Ed25519 signature by that key.
// Returns ErrExpired or ErrBadSig.
func VerifyReceiptSignature(receipt *domain.Receipt, trustedPubkey string, now time.Time) error {
	if receipt == nil {
		return apperror.ErrBadSig()
	}
	if !receipt.IsFresh(now.Unix()) {
		return apperror.ErrExpired()
	}
	if receipt.GatewayPubkey != trustedPubkey {
		return apperror.ErrBadSig()
	}

	pub, err := base64.StdEncoding.DecodeString(receipt.GatewayPubkey)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return apperror.ErrBadSig()
	}
	sig, err := base64.StdEncoding.DecodeString(receipt.Sig)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return apperror.ErrBadSig()
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(receipt.CanonicalMessage()), sig) {
		return apperror.ErrBadSig()
	}
	return nil
}

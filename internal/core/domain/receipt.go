package domain

import "strconv"

// Receipt is a gateway-signed attestation that an invoice was settled.
// Anyone holding the gateway public key can verify it offline.
type Receipt struct {
	Feature       string `json:"feature"`
	Amount        string `json:"amount"`
	Unit          string `json:"unit"`
	TTL           int64  `json:"ttl"`
	Nonce         string `json:"nonce"`
	MerkleID      string `json:"merkleId"`
	Payer         string `json:"payer"`
	GatewayPubkey string `json:"gatewayPubkey"` // base64 Ed25519 public key
	TS            int64  `json:"ts"`
	Sig           string `json:"sig"` // base64 Ed25519 signature over CanonicalMessage
}

// NewReceipt builds the unsigned receipt for a settled invoice.
func NewReceipt(inv *Invoice, payer, gatewayPubkey string, settledAt int64) *Receipt {
	return &Receipt{
		Feature:       inv.Feature,
		Amount:        inv.Amount,
		Unit:          inv.Unit,
		TTL:           inv.TTL,
		Nonce:         inv.Nonce,
		MerkleID:      inv.MerkleID,
		Payer:         payer,
		GatewayPubkey: gatewayPubkey,
		TS:            settledAt,
	}
}

// CanonicalMessage returns the string the gateway signs. Unlike the invoice message it
// binds the ttl, the payer and the signer key.
// Format: FEATURE|AMOUNT|UNIT|TTL|NONCE|MERKLE_ID|PAYER|GATEWAY_PUBKEY|TS
func (r *Receipt) CanonicalMessage() string {
	return joinCanonical(
		r.Feature,
		r.Amount,
		r.Unit,
		strconv.FormatInt(r.TTL, 10),
		r.Nonce,
		r.MerkleID,
		r.Payer,
		r.GatewayPubkey,
		strconv.FormatInt(r.TS, 10),
	)
}

// IsFresh reports whether the receipt still authorizes access at now (epoch seconds).
func (r *Receipt) IsFresh(now int64) bool {
	return isFresh(r.TS, r.TTL, now)
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleInvoice() *Invoice {
	return &Invoice{
		Feature:  "api.translate",
		Amount:   "0.01",
		Unit:     "SOL",
		TTL:      90,
		Nonce:    "3f2b9c0e8a7d4e1f9b6c5a4d3e2f1a0b",
		MerkleID: "ab",
		TS:       1700000000,
		Wallet:   "solana",
	}
}

func TestInvoice_CanonicalMessage(t *testing.T) {
	inv := sampleInvoice()

	assert.Equal(t,
		"api.translate|0.01|SOL|3f2b9c0e8a7d4e1f9b6c5a4d3e2f1a0b|ab|1700000000",
		inv.CanonicalMessage(),
	)
	assert.Equal(t, inv.CanonicalMessage(), sampleInvoice().CanonicalMessage(), "same invoice must serialize identically")
}

func TestInvoice_CanonicalMessage_ExcludesTTLAndWallet(t *testing.T) {
	a := sampleInvoice()
	b := sampleInvoice()
	b.TTL = 10
	b.Wallet = "evm"

	assert.Equal(t, a.CanonicalMessage(), b.CanonicalMessage())
}

func TestInvoice_IsFresh(t *testing.T) {
	inv := sampleInvoice()

	tests := []struct {
		name string
		now  int64
		want bool
	}{
		{"at issuance", inv.TS, true},
		{"last valid second", inv.TS + inv.TTL, true},
		{"one second late", inv.TS + inv.TTL + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inv.IsFresh(tt.now))
		})
	}
	assert.Equal(t, inv.TS+inv.TTL, inv.ExpiresAt())
}

func TestInvoice_IsFresh_ExtremeValues(t *testing.T) {
	const now = int64(1700000000)

	tests := []struct {
		name string
		ts   int64
		ttl  int64
		want bool
	}{
		{"max ttl", now - 10, math.MaxInt64, true},
		{"negative ttl", now, -1, false},
		{"min int64 ttl", now, math.MinInt64, false},
		{"min int64 ts", math.MinInt64, 90, false},
		{"min int64 ts with max ttl", math.MinInt64, math.MaxInt64, false},
		{"zero ts", 0, 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Invoice{TS: tt.ts, TTL: tt.ttl}
			assert.Equal(t, tt.want, inv.IsFresh(now))
		})
	}
}

func TestReceipt_CanonicalMessage(t *testing.T) {
	r := NewReceipt(sampleInvoice(), "PayerKey", "R2F0ZXdheQ==", 1700000010)

	assert.Equal(t,
		"api.translate|0.01|SOL|90|3f2b9c0e8a7d4e1f9b6c5a4d3e2f1a0b|ab|PayerKey|R2F0ZXdheQ==|1700000010",
		r.CanonicalMessage(),
	)
	assert.Empty(t, r.Sig)
}

func TestReceipt_MessageDiffersFromInvoiceMessage(t *testing.T) {
	inv := sampleInvoice()
	r := NewReceipt(inv, "PayerKey", "R2F0ZXdheQ==", inv.TS)

	assert.NotEqual(t, inv.CanonicalMessage(), r.CanonicalMessage())
}

func TestReceipt_IsFresh(t *testing.T) {
	r := NewReceipt(sampleInvoice(), "p", "k", 1000)

	assert.True(t, r.IsFresh(1090))
	assert.False(t, r.IsFresh(1091))
}

func TestParseWalletKind(t *testing.T) {
	tests := []struct {
		tag  string
		want WalletKind
	}{
		{"ed25519-base58", WalletKindSolana},
		{"solana", WalletKindSolana},
		{" Solana ", WalletKindSolana},
		{"secp256k1-recoverable", WalletKindEVM},
		{"evm", WalletKindEVM},
		{"ethereum", WalletKindEVM},
		{"", WalletKindUnknown},
		{"bitcoin", WalletKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWalletKind(tt.tag))
		})
	}
}

func TestWalletKind_String(t *testing.T) {
	assert.Equal(t, "ed25519-base58", WalletKindSolana.String())
	assert.Equal(t, "secp256k1-recoverable", WalletKindEVM.String())
	assert.Equal(t, "unknown", WalletKindUnknown.String())
}

func TestWalletProof_Signature(t *testing.T) {
	tests := []struct {
		name  string
		proof WalletProof
		want  string
	}{
		{"solana prefers base64", WalletProof{Kind: "solana", SignatureBase64: "b64", SignatureHex: "0xhex"}, "b64"},
		{"evm prefers hex", WalletProof{Kind: "evm", SignatureBase64: "b64", SignatureHex: "0xhex"}, "0xhex"},
		{"solana falls back", WalletProof{Kind: "solana", SignatureHex: "0xhex"}, "0xhex"},
		{"evm falls back", WalletProof{Kind: "evm", SignatureBase64: "b64"}, "b64"},
		{"nothing supplied", WalletProof{Kind: "evm"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.proof.Signature())
		})
	}
}

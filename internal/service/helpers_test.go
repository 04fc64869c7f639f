package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"

	"micropay-gateway/config"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed instant used by deterministic tests.
var testNow = time.Unix(1735689600, 0)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testInvoiceDefaults() config.InvoiceConfig {
	return config.InvoiceConfig{
		Feature: "api.translate",
		Amount:  "0.01",
		Unit:    "SOL",
		TTLSec:  90,
		MaxTTL:  3600,
		Wallet:  "solana",
	}
}

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = 0x42
	}
	return seed
}

func newTestIdentity(t *testing.T) *GatewayIdentity {
	t.Helper()
	id, err := NewGatewayIdentity(testSeed())
	require.NoError(t, err)
	return id
}

type solanaWallet struct {
	priv    ed25519.PrivateKey
	account string
}

func newSolanaWallet(t *testing.T) solanaWallet {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return solanaWallet{priv: priv, account: base58.Encode(pub)}
}

func (w solanaWallet) sign(message string) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(w.priv, []byte(message)))
}

// signEVM signs digest with a fresh secp256k1 key and returns the account and the
// hex signature with v shifted to 27/28.
func signEVM(t *testing.T, digest []byte) (account string, sigHex string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(digest, key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), "0x" + hex.EncodeToString(sig)
}

func personalDigest(message string) []byte {
	return accounts.TextHash([]byte(message))
}

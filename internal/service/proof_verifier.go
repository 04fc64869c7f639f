package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"

	"micropay-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
)

// WalletProofVerifier implements ports.ProofVerifier for every supported wallet kind.
type WalletProofVerifier struct{}

// NewWalletProofVerifier creates a new WalletProofVerifier.
func NewWalletProofVerifier() *WalletProofVerifier {
	return &WalletProofVerifier{}
}

// Verify checks signature over message for account under the scheme kind.
// Malformed input of any kind yields false.
func (v *WalletProofVerifier) Verify(kind domain.WalletKind, message, account, signature string) bool {
	switch kind {
	case domain.WalletKindSolana:
		return verifySolana(message, account, signature)
	case domain.WalletKindEVM:
		return verifyEVM(message, account, signature)
	default:
		return false
	}
}

// verifySolana checks a base64 Ed25519 signature against a base58 public key.
func verifySolana(message, account, signature string) bool {
	pub, err := base58.Decode(strings.TrimSpace(account))
	if err != nil || len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig)
}

// verifyEVM recovers the signer of a 65-byte secp256k1 signature and compares it to
// account. Wallets sign either the EIP-191 personal message or the raw Keccak-256
// digest, so both are tried.
func verifyEVM(message, account, signature string) bool {
	if !common.IsHexAddress(account) {
		return false
	}
	want := common.HexToAddress(account)

	sig, err := decodeHexSignature(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false
	}
	switch sig[crypto.RecoveryIDOffset] {
	case 0, 1:
	case 27, 28:
		sig[crypto.RecoveryIDOffset] -= 27
	default:
		return false
	}

	for _, digest := range [][]byte{
		accounts.TextHash([]byte(message)),
		crypto.Keccak256([]byte(message)),
	} {
		if got, ok := recoverAddress(digest, sig); ok && got == want {
			return true
		}
	}
	return false
}

// decodeHexSignature accepts the signature with or without a 0x prefix.
func decodeHexSignature(signature string) ([]byte, error) {
	s := strings.TrimSpace(signature)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hexutil.Decode("0x" + s)
}

func recoverAddress(digest, sig []byte) (common.Address, bool) {
	pub, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(*pub), true
}

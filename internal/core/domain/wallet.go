package domain

import "strings"

// WalletKind is the closed set of wallet signature schemes the gateway accepts.
type WalletKind int

const (
	WalletKindUnknown WalletKind = iota
	// WalletKindSolana: base58 Ed25519 public key, base64 signature.
	WalletKindSolana
	// WalletKindEVM: hex address, hex 65-byte recoverable secp256k1 signature.
	WalletKindEVM
)

// ParseWalletKind maps a wire tag to a WalletKind. Unrecognized tags map to WalletKindUnknown.
func ParseWalletKind(tag string) WalletKind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "ed25519-base58", "solana":
		return WalletKindSolana
	case "secp256k1-recoverable", "evm", "ethereum":
		return WalletKindEVM
	default:
		return WalletKindUnknown
	}
}

func (k WalletKind) String() string {
	switch k {
	case WalletKindSolana:
		return "ed25519-base58"
	case WalletKindEVM:
		return "secp256k1-recoverable"
	default:
		return "unknown"
	}
}

// WalletProof is the caller's evidence of payment. It is consumed by settlement and never stored.
type WalletProof struct {
	Kind            string `json:"kind"`
	Account         string `json:"account"`
	SignatureBase64 string `json:"signatureBase64,omitempty"`
	SignatureHex    string `json:"signatureHex,omitempty"`
}

// Signature returns the signature in the encoding native to the proof's scheme,
// falling back to whichever field was supplied.
func (p *WalletProof) Signature() string {
	primary, fallback := p.SignatureBase64, p.SignatureHex
	if ParseWalletKind(p.Kind) == WalletKindEVM {
		primary, fallback = p.SignatureHex, p.SignatureBase64
	}
	if primary != "" {
		return primary
	}
	return fallback
}

package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GatewayIdentity is the gateway's Ed25519 signing key. It is created once at
// startup and never rotated while the process runs.
type GatewayIdentity struct {
	priv      ed25519.PrivateKey
	pubBase64 string
}

// NewGatewayIdentity derives the keypair from seed. An empty seed yields a random
// keypair; any seed that is not exactly 32 bytes is a configuration error.
func NewGatewayIdentity(seed []byte) (*GatewayIdentity, error) {
	var priv ed25519.PrivateKey
	switch len(seed) {
	case 0:
		_, generated, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generating gateway key: %w", err)
		}
		priv = generated
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(seed)
	default:
		return nil, fmt.Errorf("gateway seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	pub := priv.Public().(ed25519.PublicKey)
	return &GatewayIdentity{
		priv:      priv,
		pubBase64: base64.StdEncoding.EncodeToString(pub),
	}, nil
}

// PublicKeyBase64 returns the standard base64 encoding of the public key.
func (g *GatewayIdentity) PublicKeyBase64() string {
	return g.pubBase64
}

// PublicKey returns a copy of the raw public key.
func (g *GatewayIdentity) PublicKey() ed25519.PublicKey {
	pub := g.priv.Public().(ed25519.PublicKey)
	out := make(ed25519.PublicKey, len(pub))
	copy(out, pub)
	return out
}

// Sign signs message with the gateway key.
func (g *GatewayIdentity) Sign(message []byte) []byte {
	return ed25519.Sign(g.priv, message)
}

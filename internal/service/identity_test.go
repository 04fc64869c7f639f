package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGatewayIdentity_FromSeedIsDeterministic(t *testing.T) {
	a, err := NewGatewayIdentity(testSeed())
	require.NoError(t, err)
	b, err := NewGatewayIdentity(testSeed())
	require.NoError(t, err)

	assert.Equal(t, a.PublicKeyBase64(), b.PublicKeyBase64())

	pub, err := base64.StdEncoding.DecodeString(a.PublicKeyBase64())
	require.NoError(t, err)
	assert.Len(t, pub, ed25519.PublicKeySize)
}

func TestNewGatewayIdentity_RandomWithoutSeed(t *testing.T) {
	a, err := NewGatewayIdentity(nil)
	require.NoError(t, err)
	b, err := NewGatewayIdentity(nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.PublicKeyBase64(), b.PublicKeyBase64())
}

func TestNewGatewayIdentity_RejectsWrongSeedLength(t *testing.T) {
	for _, n := range []int{1, 16, 31, 33, 64} {
		_, err := NewGatewayIdentity(make([]byte, n))
		assert.Error(t, err, "seed of %d bytes", n)
	}
}

func TestGatewayIdentity_Sign(t *testing.T) {
	id := newTestIdentity(t)
	msg := []byte("api.translate|0.01|SOL")

	sig := id.Sign(msg)
	assert.True(t, ed25519.Verify(id.PublicKey(), msg, sig))
	assert.False(t, ed25519.Verify(id.PublicKey(), []byte("other"), sig))
}

func TestGatewayIdentity_PublicKeyIsCopy(t *testing.T) {
	id := newTestIdentity(t)
	pub := id.PublicKey()
	pub[0] ^= 0xff

	assert.NotEqual(t, pub, id.PublicKey())
}

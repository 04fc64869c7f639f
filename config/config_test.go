package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Empty(t, cfg.Gateway.Seed)

	assert.Equal(t, "api.translate", cfg.Invoice.Feature)
	assert.Equal(t, "0.01", cfg.Invoice.Amount)
	assert.Equal(t, "SOL", cfg.Invoice.Unit)
	assert.Equal(t, int64(90), cfg.Invoice.TTLSec)
	assert.Equal(t, int64(3600), cfg.Invoice.MaxTTL)
	assert.Equal(t, "solana", cfg.Invoice.Wallet)

	assert.Equal(t, "memory", cfg.Ledger.Backend)
	assert.Equal(t, 30*time.Second, cfg.Ledger.EvictInterval)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 500, cfg.Archive.Capacity)
	assert.Equal(t, time.Hour, cfg.Admin.JWTExpiry)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
gateway:
  seed: "0101010101010101010101010101010101010101010101010101010101010101"
invoice:
  feature: "api.summarize"
  amount: "0.5"
  unit: "USDC"
  ttl_sec: 60
  max_ttl_sec: 600
  wallet: "evm"
ledger:
  backend: "redis"
  evict_interval: "5s"
redis:
  host: "redis.example.com"
  port: 6380
  db: 2
archive:
  capacity: 50
admin:
  jwt_secret: "ops-secret"
  jwt_expiry: "15m"
log:
  level: "debug"
  pretty: true
`)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "api.summarize", cfg.Invoice.Feature)
	assert.Equal(t, "0.5", cfg.Invoice.Amount)
	assert.Equal(t, "USDC", cfg.Invoice.Unit)
	assert.Equal(t, int64(60), cfg.Invoice.TTLSec)
	assert.Equal(t, "evm", cfg.Invoice.Wallet)
	assert.Equal(t, "redis", cfg.Ledger.Backend)
	assert.Equal(t, 5*time.Second, cfg.Ledger.EvictInterval)
	assert.Equal(t, "redis.example.com:6380", cfg.Redis.Addr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 50, cfg.Archive.Capacity)
	assert.Equal(t, "ops-secret", cfg.Admin.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Admin.JWTExpiry)
	assert.True(t, cfg.Log.Pretty)

	seed, err := cfg.Gateway.SeedBytes()
	require.NoError(t, err)
	assert.Len(t, seed, 32)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MPG_SERVER_PORT", "3000")
	t.Setenv("MPG_INVOICE_UNIT", "ETH")
	t.Setenv("MPG_ADMIN_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "ETH", cfg.Invoice.Unit)
	assert.Equal(t, "env-secret", cfg.Admin.JWTSecret)
}

func TestLoad_RejectsUnknownLedgerBackend(t *testing.T) {
	t.Setenv("MPG_LEDGER_BACKEND", "etcd")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger backend")
}

func TestLoad_RejectsTTLAboveMax(t *testing.T) {
	t.Setenv("MPG_INVOICE_TTL_SEC", "120")
	t.Setenv("MPG_INVOICE_MAX_TTL_SEC", "60")

	_, err := Load("")
	require.Error(t, err)
}

func TestGatewayConfig_SeedBytes(t *testing.T) {
	seed, err := GatewayConfig{}.SeedBytes()
	require.NoError(t, err)
	assert.Nil(t, seed)

	seed, err = GatewayConfig{Seed: "0xabcd"}.SeedBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, seed)

	_, err = GatewayConfig{Seed: "not-hex"}.SeedBytes()
	assert.Error(t, err)

	for _, blank := range []string{"0x", " 0x "} {
		seed, err = GatewayConfig{Seed: blank}.SeedBytes()
		assert.Error(t, err, "seed %q", blank)
		assert.Nil(t, seed)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}

package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Invoice InvoiceConfig `mapstructure:"invoice"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"` // debug, release, test
	OpenAPIPath string `mapstructure:"openapi_path"`
}

type GatewayConfig struct {
	Seed string `mapstructure:"seed"` // hex-encoded 32-byte Ed25519 seed; empty = random keypair
}

// SeedBytes decodes the configured signing seed. A nil slice means no seed was given.
func (g GatewayConfig) SeedBytes() ([]byte, error) {
	s := strings.TrimSpace(g.Seed)
	if s == "" {
		return nil, nil
	}
	seed, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding gateway seed: %w", err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("gateway seed %q decodes to zero bytes", g.Seed)
	}
	return seed, nil
}

// InvoiceConfig holds the defaults applied to invoice requests that omit a field.
type InvoiceConfig struct {
	Feature string `mapstructure:"feature"`
	Amount  string `mapstructure:"amount"`
	Unit    string `mapstructure:"unit"`
	TTLSec  int64  `mapstructure:"ttl_sec"`
	MaxTTL  int64  `mapstructure:"max_ttl_sec"`
	Wallet  string `mapstructure:"wallet"`
}

type LedgerConfig struct {
	Backend       string        `mapstructure:"backend"` // memory, redis
	EvictInterval time.Duration `mapstructure:"evict_interval"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type ArchiveConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// AdminConfig controls access to operational endpoints. An empty secret leaves them open.
type AdminConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer string        `mapstructure:"jwt_issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MPG_ (MicroPay Gateway).
// Nested keys use underscore: MPG_GATEWAY_SEED, MPG_LEDGER_BACKEND, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.openapi_path", "docs/api/openapi.yaml")
	v.SetDefault("gateway.seed", "")
	v.SetDefault("invoice.feature", "api.translate")
	v.SetDefault("invoice.amount", "0.01")
	v.SetDefault("invoice.unit", "SOL")
	v.SetDefault("invoice.ttl_sec", 90)
	v.SetDefault("invoice.max_ttl_sec", 3600)
	v.SetDefault("invoice.wallet", "solana")
	v.SetDefault("ledger.backend", "memory")
	v.SetDefault("ledger.evict_interval", "30s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("archive.capacity", 500)
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_expiry", "1h")
	v.SetDefault("admin.jwt_issuer", "micropay-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// MPG_LEDGER_BACKEND -> ledger.backend
	v.SetEnvPrefix("MPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Ledger.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported ledger backend %q", c.Ledger.Backend)
	}
	if c.Invoice.TTLSec <= 0 {
		return fmt.Errorf("invoice.ttl_sec must be positive, got %d", c.Invoice.TTLSec)
	}
	if c.Invoice.MaxTTL < c.Invoice.TTLSec {
		return fmt.Errorf("invoice.max_ttl_sec (%d) is below invoice.ttl_sec (%d)", c.Invoice.MaxTTL, c.Invoice.TTLSec)
	}
	if c.Archive.Capacity <= 0 {
		return fmt.Errorf("archive.capacity must be positive, got %d", c.Archive.Capacity)
	}
	return nil
}

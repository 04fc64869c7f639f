package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const noncePrefix = "nonce:"

// NonceLedger implements ports.NonceLedger on Redis. Each nonce is a key whose
// TTL ends one second after its expiry, so Redis drops it without a sweep.
type NonceLedger struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewNonceLedger creates a Redis-backed nonce ledger.
func NewNonceLedger(client goredis.UniversalClient) *NonceLedger {
	return &NonceLedger{
		client: client,
		prefix: noncePrefix,
		now:    time.Now,
	}
}

// Seen reports whether nonce still has a key.
func (l *NonceLedger) Seen(ctx context.Context, nonce string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+nonce).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce lookup: %w", err)
	}
	return n > 0, nil
}

// Reserve sets the nonce key with NX. It returns false when the key already exists.
func (l *NonceLedger) Reserve(ctx context.Context, nonce string, expireAt int64) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+nonce, expireAt, goredis.SetArgs{
		Mode: "NX",
		TTL:  l.ttlUntil(expireAt),
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis nonce reserve: %w", err)
	}
	return result == "OK", nil
}

// Mark records or overwrites the nonce key.
func (l *NonceLedger) Mark(ctx context.Context, nonce string, expireAt int64) error {
	if err := l.client.Set(ctx, l.prefix+nonce, expireAt, l.ttlUntil(expireAt)).Err(); err != nil {
		return fmt.Errorf("redis nonce mark: %w", err)
	}
	return nil
}

// EvictExpired is a no-op: Redis expires keys on its own.
func (l *NonceLedger) EvictExpired(_ context.Context) (int, error) {
	return 0, nil
}

// ttlUntil keeps the key through the whole expiry second, never less than one second.
func (l *NonceLedger) ttlUntil(expireAt int64) time.Duration {
	ttl := time.Duration(expireAt-l.now().Unix()+1) * time.Second
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}

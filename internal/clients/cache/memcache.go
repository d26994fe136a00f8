package cache

import (
	"context"
	"math"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
)

const (
	keyPrefix = "daily-expenses:"
	// memcached reads expirations up to this many seconds as relative.
	maxRelativeExpiration = 30 * 24 * 60 * 60
)

type MemcacheClient struct {
	client *memcache.Client
	now    func() time.Time
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, now: time.Now}, errors.Wrap(mc.Ping(), "ping memcached")
}

func formatKey(name string) string {
	return keyPrefix + name
}

// GetSlot relies on memcached itself to forget expired items.
func (mc *MemcacheClient) GetSlot(_ context.Context, name string) (string, bool, error) {
	item, err := mc.client.Get(formatKey(name))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "get slot")
	}
	return string(item.Value), true, nil
}

func (mc *MemcacheClient) SetSlot(_ context.Context, name, value string, expiresAt time.Time) error {
	logger.Debug("set slot", zap.String("name", name), zap.Time("expiresAt", expiresAt))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(name),
		Value:      []byte(value),
		Expiration: expiration(mc.now(), expiresAt),
	})
	return errors.Wrap(err, "set slot")
}

// expiration converts expiresAt into memcached's format: a relative TTL in
// seconds within 30 days, a unix timestamp beyond that. Zero means "never"
// to memcached, so an already elapsed time maps to -1.
func expiration(now, expiresAt time.Time) int32 {
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		return -1
	}
	seconds := int64(math.Ceil(ttl.Seconds()))
	if seconds <= maxRelativeExpiration {
		return int32(seconds)
	}
	unix := expiresAt.Unix()
	if unix > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(unix)
}

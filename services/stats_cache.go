package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"EmoGoBackend/models"

	"github.com/go-redis/redis/v8"
)

// StatsCache 缓存各集合的记录数。错误只会被记录，调用方应回退到直接计数。
//
// 每个类型有一个版本号，Invalidate 使版本号递增。SetCount 写入读取计数前拿到的版本，
// 期间若有新记录写入，旧版本的计数不会再被读到。
type StatsCache interface {
	// GetCount 返回当前版本以及该版本下的计数，命中时 ok 为 true
	GetCount(ctx context.Context, kind models.RecordKind) (count, version int64, ok bool, err error)
	SetCount(ctx context.Context, kind models.RecordKind, version, count int64) error
	Invalidate(ctx context.Context, kind models.RecordKind) error
}

const statsKeyPrefix = "emogo:count:"

// RedisStatsCache 基于 Redis 的计数缓存
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisStatsCache{client: client, ttl: ttl}
}

func versionKey(kind models.RecordKind) string {
	return statsKeyPrefix + string(kind) + ":version"
}

func countKey(kind models.RecordKind, version int64) string {
	return fmt.Sprintf("%s%s:%d", statsKeyPrefix, kind, version)
}

func (c *RedisStatsCache) GetCount(ctx context.Context, kind models.RecordKind) (int64, int64, bool, error) {
	version, err := c.client.Get(ctx, versionKey(kind)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, false, err
	}

	n, err := c.client.Get(ctx, countKey(kind, version)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, version, false, nil
	}
	if err != nil {
		return 0, version, false, err
	}
	return n, version, true, nil
}

func (c *RedisStatsCache) SetCount(ctx context.Context, kind models.RecordKind, version, count int64) error {
	return c.client.Set(ctx, countKey(kind, version), count, c.ttl).Err()
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, kind models.RecordKind) error {
	return c.client.Incr(ctx, versionKey(kind)).Err()
}

// NoopStatsCache 未配置 Redis 时使用，永不命中
type NoopStatsCache struct{}

func (NoopStatsCache) GetCount(context.Context, models.RecordKind) (int64, int64, bool, error) {
	return 0, 0, false, nil
}

func (NoopStatsCache) SetCount(context.Context, models.RecordKind, int64, int64) error { return nil }

func (NoopStatsCache) Invalidate(context.Context, models.RecordKind) error { return nil }

package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// InitRedis 初始化Redis客户端，未配置 REDIS_HOST 时返回 nil
func InitRedis(ctx context.Context, config Config) (*redis.Client, error) {
	if !config.RedisEnabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// 测试连接
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis连接测试失败: %w", err)
	}

	return client, nil
}

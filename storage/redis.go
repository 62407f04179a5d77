package storage

import (
	"context"
	"fmt"

	"github.com/monibridge/core/config"
	"github.com/redis/go-redis/v9"
)

// RedisClient holds the redis connection. Nil when redis is disabled.
var RedisClient *redis.Client

// InitializeRedis connects to redis when it is enabled in configuration.
func InitializeRedis() error {
	conf := config.RedisConfig()
	if !conf.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	RedisClient = client
	return nil
}

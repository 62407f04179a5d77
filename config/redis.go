package config

import (
	"sync"

	"github.com/spf13/viper"
)

// RedisConfiguration defines the redis settings. Redis is optional: when
// disabled, caches that would be shared across workers fall back to
// per-process memory.
type RedisConfiguration struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

var (
	redisConfigOnce sync.Once
	redisConfig     *RedisConfiguration
)

// RedisConfig returns the redis configurations.
func RedisConfig() *RedisConfiguration {
	redisConfigOnce.Do(func() {
		viper.SetDefault("REDIS_ENABLED", false)
		viper.SetDefault("REDIS_ADDR", "localhost:6379")
		viper.SetDefault("REDIS_DB", 0)

		redisConfig = &RedisConfiguration{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		}
	})
	return redisConfig
}

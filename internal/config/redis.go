package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns a client for the session revocation store, or nil when
// REDIS_ADDR is not set.
func ConnectRedis(ctx context.Context, cfg *Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, session revocations are kept in memory")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	return client, nil
}

package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"qbrain-backend/internal/config"
)

// RedisClient giữ connection dùng chung cho cache và asynq
type RedisClient struct {
	Client *redis.Client
	opts   *redis.Options
}

func NewRedisClient(cfg config.RedisConfig) *RedisClient {
	opts := &redis.Options{
		Addr:         cfg.Host,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	return &RedisClient{Client: redis.NewClient(opts), opts: opts}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

// Cache trả về RedisCache với key prefix riêng (vd: "qbrain:")
func (r *RedisClient) Cache(prefix string) *RedisCache {
	return NewRedisCache(r.Client, prefix)
}

// Addr là địa chỉ dùng cho asynq.RedisClientOpt
func (r *RedisClient) Addr() string { return r.opts.Addr }

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

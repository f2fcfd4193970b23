package main

import (
	"log"

	"github.com/hibiken/asynq"

	"qbrain-backend/internal/config"
)

// redisOpt dùng chung cho asynq server và scheduler
func redisOpt(cfg *config.Config) asynq.RedisClientOpt {
	log.Printf("[Config] Redis: %s, SMTP: %s:%d", cfg.Redis.Host, cfg.SMTP.Host, cfg.SMTP.Port)

	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"qbrain-backend/internal/config"
	"qbrain-backend/internal/shared"
	"qbrain-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redis asynq.RedisClientOpt, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redis,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

// RegisterJobs đăng ký tất cả periodic jobs
func (s *Scheduler) RegisterJobs() error {
	return s.registerDailyDigestJob()
}

// ================================================
// Daily digest (mặc định 8h sáng UTC)
// ================================================
func (s *Scheduler) registerDailyDigestJob() error {
	if s.jobConfig.DigestCron == "" {
		logger.Info("Daily digest disabled (DIGEST_CRON empty)", nil)
		return nil
	}

	payload, err := json.Marshal(shared.DigestPayload{To: s.jobConfig.DigestTo})
	if err != nil {
		return err
	}

	_, err = s.scheduler.Register(
		s.jobConfig.DigestCron,
		asynq.NewTask(shared.TypeDailyDigest, payload),
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register DailyDigest job", err)
		return err
	}

	logger.Info("✓ Registered DailyDigest", map[string]interface{}{"cron": s.jobConfig.DigestCron})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}

package email

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"qbrain-backend/internal/infrastructure/queue"
	"qbrain-backend/internal/shared"
)

// QueueSender không gửi ngay mà enqueue task email:send cho worker (MAIL_DELIVERY=queue)
type QueueSender struct {
	queue queue.Enqueuer
}

func NewQueueSender(q queue.Enqueuer) *QueueSender {
	return &QueueSender{queue: q}
}

func (s *QueueSender) Send(ctx context.Context, req EmailRequest) error {
	if len(req.To) == 0 {
		return ErrNoRecipient
	}
	_, err := s.queue.Enqueue(ctx, shared.TypeSendEmail, req,
		asynq.Queue(shared.QueueEmail),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	)
	return err
}

package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/infrastructure/email"
)

// ============================================
// Send Email Handler (email:send)
// ============================================

type SendEmailHandler struct {
	sender email.Sender
}

func NewSendEmailHandler(sender email.Sender) *SendEmailHandler {
	return &SendEmailHandler{sender: sender}
}

func (h *SendEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var req email.EmailRequest
	if err := json.Unmarshal(task.Payload(), &req); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal SendEmail payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	if len(req.To) == 0 {
		log.Warn().Str("subject", req.Subject).Msg("Dropping email without recipient")
		return fmt.Errorf("%w: %w", email.ErrNoRecipient, asynq.SkipRetry)
	}

	log.Info().
		Strs("to", req.To).
		Str("subject", req.Subject).
		Msg("Processing email")

	if err := h.sender.Send(ctx, req); err != nil {
		log.Error().Err(err).Strs("to", req.To).Msg("Failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().
		Strs("to", req.To).
		Msg("Email sent successfully")

	return nil
}

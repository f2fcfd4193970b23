package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	appmodel "qbrain-backend/internal/domains/application/model"
	contactmodel "qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/infrastructure/email"
	"qbrain-backend/internal/shared"
)

type ApplicationSource interface {
	ListSince(ctx context.Context, since time.Time) ([]*appmodel.Application, error)
	Count(ctx context.Context, status string) (int64, error)
}

type MessageSource interface {
	ListSince(ctx context.Context, since time.Time) ([]*contactmodel.ContactMessage, error)
	Count(ctx context.Context, status string) (int64, error)
}

// ============================================
// Daily Digest Handler (digest:daily)
// ============================================

type DigestHandler struct {
	apps     ApplicationSource
	messages MessageSource
	composer *email.Composer
	sender   email.Sender
	now      func() time.Time
}

func NewDigestHandler(apps ApplicationSource, messages MessageSource, composer *email.Composer, sender email.Sender) *DigestHandler {
	return &DigestHandler{apps: apps, messages: messages, composer: composer, sender: sender, now: time.Now}
}

func (h *DigestHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p shared.DigestPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	now := h.now().UTC()
	since := now.Add(-24 * time.Hour)
	if p.Since != "" {
		t, err := time.Parse(time.RFC3339, p.Since)
		if err != nil {
			return fmt.Errorf("invalid since %q: %w", p.Since, asynq.SkipRetry)
		}
		since = t
	}

	data, err := h.collect(ctx, since)
	if err != nil {
		return err
	}
	data.Date = now.Format("2006-01-02")

	// Không có gì mới thì thôi
	if len(data.NewApplications) == 0 && len(data.NewMessages) == 0 {
		log.Info().Time("since", since).Msg("Daily digest skipped: no new activity")
		return nil
	}

	req, err := h.composer.Digest(p.To, *data)
	if err != nil {
		log.Warn().Err(err).Msg("Daily digest not composed")
		return fmt.Errorf("compose digest: %w: %w", err, asynq.SkipRetry)
	}
	if err := h.sender.Send(ctx, req); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	log.Info().
		Int("applications", len(data.NewApplications)).
		Int("messages", len(data.NewMessages)).
		Msg("Daily digest sent")
	return nil
}

func (h *DigestHandler) collect(ctx context.Context, since time.Time) (*email.DigestData, error) {
	apps, err := h.apps.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	msgs, err := h.messages.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	pending, err := h.apps.Count(ctx, appmodel.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}
	unread, err := h.messages.Count(ctx, contactmodel.StatusUnread)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	d := &email.DigestData{PendingApplications: pending, UnreadMessages: unread}
	for _, a := range apps {
		d.NewApplications = append(d.NewApplications, email.DigestApplication{
			FullName:      a.PersonalInfo.FullName,
			Email:         a.PersonalInfo.Email,
			PreferredRole: a.PersonalInfo.PreferredRole,
		})
	}
	for _, m := range msgs {
		d.NewMessages = append(d.NewMessages, email.DigestMessage{Name: m.Name, Email: m.Email, Subject: m.Subject})
	}
	return d, nil
}

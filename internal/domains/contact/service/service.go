package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/domains/contact/repository"
	"qbrain-backend/internal/infrastructure/email"
)

type contactService struct {
	repo     repository.ContactRepository
	composer *email.Composer
	sender   email.Sender
}

func NewContactService(repo repository.ContactRepository, composer *email.Composer, sender email.Sender) ServiceInterface {
	return &contactService{repo: repo, composer: composer, sender: sender}
}

func (s *contactService) Submit(ctx context.Context, req model.ContactRequest) (*model.SubmitResult, error) {
	req.Normalize()

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  model.StatusUnread,
	}
	msg.ID = uuid.New().String()

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}
	log.Info().Str("id", msg.ID).Str("email", msg.Email).Msg("contact message received")

	return &model.SubmitResult{ID: msg.ID, EmailSent: s.notify(ctx, msg)}, nil
}

func (s *contactService) notify(ctx context.Context, msg *model.ContactMessage) bool {
	data := email.ContactData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}

	admin, err := s.composer.ContactNotification(data)
	if err != nil {
		log.Error().Err(err).Str("id", msg.ID).Msg("compose contact notification failed")
		return false
	}
	reply, err := s.composer.ContactAutoReply(data)
	if err != nil {
		log.Error().Err(err).Str("id", msg.ID).Msg("compose contact auto-reply failed")
		return false
	}

	sent, err := email.SendAll(ctx, s.sender, admin, reply)
	if err != nil {
		log.Error().Err(err).Str("id", msg.ID).Int("sent", sent).Msg("contact message saved but not emailed")
		return false
	}
	return true
}

func (s *contactService) List(ctx context.Context, status string) ([]*model.ContactMessage, error) {
	if status != "" && !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *contactService) ListSince(ctx context.Context, since time.Time) ([]*model.ContactMessage, error) {
	return s.repo.ListSince(ctx, since)
}

func (s *contactService) UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactService) Count(ctx context.Context, status string) (int64, error) {
	return s.repo.Count(ctx, status)
}

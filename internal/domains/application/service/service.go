package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qbrain-backend/internal/domains/application/model"
	"qbrain-backend/internal/domains/application/repository"
	"qbrain-backend/internal/infrastructure/email"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/utils"
)

type applicationService struct {
	repo     repository.ApplicationRepository
	blob     storage.BlobStore
	composer *email.Composer
	sender   email.Sender
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	blob storage.BlobStore,
	composer *email.Composer,
	sender email.Sender,
) ServiceInterface {
	return &applicationService{
		repo:     repo,
		blob:     blob,
		composer: composer,
		sender:   sender,
	}
}

func (s *applicationService) Submit(ctx context.Context, req model.SubmitApplicationRequest, resume *utils.FileUpload) (*model.SubmitResult, error) {
	req.Normalize()

	app := &model.Application{
		PersonalInfo:  req.PersonalInfo,
		QuizResults:   req.QuizResults,
		InterviewSlot: req.InterviewSlot,
		Status:        model.StatusPending,
	}
	app.ID = uuid.New().String()

	// Step 1: upload resume (pdf/doc/docx, <= 10MB)
	if resume != nil {
		if err := storage.ValidateResume(resume.Filename, resume.Size); err != nil {
			return nil, err
		}
		url, err := s.blob.Upload(ctx, storage.ObjectKey(storage.PrefixResumes, resume.Filename), resume.Data, resume.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload resume: %w", err)
		}
		app.ResumeFile = &model.ResumeFile{
			URL:         url,
			Filename:    resume.Filename,
			Size:        resume.Size,
			ContentType: resume.ContentType,
		}
	}

	// Step 2: lưu hồ sơ
	if err := s.repo.Create(ctx, app); err != nil {
		if app.ResumeFile != nil {
			storage.DeleteQuietly(ctx, s.blob, app.ResumeFile.URL)
		}
		return nil, fmt.Errorf("save application: %w", err)
	}
	log.Info().
		Str("id", app.ID).
		Str("email", app.PersonalInfo.Email).
		Str("role", app.PersonalInfo.PreferredRole).
		Msg("application submitted")

	// Step 3: email best effort, không ảnh hưởng kết quả lưu
	emailSent := s.notify(ctx, app, resume)

	return &model.SubmitResult{ID: app.ID, EmailSent: emailSent}, nil
}

// notify gửi email admin (kèm resume) và email xác nhận; true nếu cả hai thành công
func (s *applicationService) notify(ctx context.Context, app *model.Application, resume *utils.FileUpload) bool {
	data := toEmailData(app)

	var attachment *email.Attachment
	if resume != nil {
		attachment = &email.Attachment{
			Filename: resume.Filename,
			Content:  resume.Data,
			MimeType: resume.ContentType,
		}
	}

	admin, err := s.composer.ApplicationNotification(data, attachment)
	if err != nil {
		log.Error().Err(err).Str("id", app.ID).Msg("compose application notification failed")
		return false
	}
	confirmation, err := s.composer.ApplicationConfirmation(data)
	if err != nil {
		log.Error().Err(err).Str("id", app.ID).Msg("compose application confirmation failed")
		return false
	}

	sent, err := email.SendAll(ctx, s.sender, admin, confirmation)
	if err != nil {
		log.Error().Err(err).Str("id", app.ID).Int("sent", sent).Msg("application saved but not emailed")
		return false
	}
	return sent == 2
}

func toEmailData(app *model.Application) email.ApplicationData {
	p := app.PersonalInfo
	return email.ApplicationData{
		FullName:      p.FullName,
		Email:         p.Email,
		Phone:         p.Phone,
		Branch:        p.Branch,
		Year:          p.Year,
		PreferredRole: p.PreferredRole,
		Motivation:    p.Motivation,
		Experience:    p.Experience,
		PortfolioURL:  p.PortfolioURL,
		QuizScore:     app.QuizScore(),
		InterviewSlot: app.InterviewSlot.String(),
	}
}

func (s *applicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *applicationService) List(ctx context.Context, status string) ([]*model.Application, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *applicationService) ListSince(ctx context.Context, since time.Time) ([]*model.Application, error) {
	return s.repo.ListSince(ctx, since)
}

func (s *applicationService) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	if status == "" || !model.IsValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	log.Info().Str("id", id).Str("status", status).Msg("application status updated")
	return s.repo.GetByID(ctx, id)
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	storage.DeleteQuietly(ctx, s.blob, app.ResumeURL())

	return s.repo.Delete(ctx, id)
}

func (s *applicationService) Count(ctx context.Context, status string) (int64, error) {
	return s.repo.Count(ctx, status)
}

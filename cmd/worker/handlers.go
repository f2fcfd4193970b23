package main

import (
	"github.com/hibiken/asynq"

	dashboardJob "qbrain-backend/internal/domains/dashboard/job"
	"qbrain-backend/internal/infrastructure/email"
	emailjob "qbrain-backend/internal/infrastructure/email/job"
	"qbrain-backend/internal/shared"
	"qbrain-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	sendEmail   *emailjob.SendEmailHandler
	dailyDigest *dashboardJob.DigestHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	// Worker luôn gửi thẳng qua SMTP, container.Sender có thể là QueueSender
	smtp := email.NewSMTPSender(c.Config.SMTP, c.Config.Mail.From)

	return &HandlerRegistry{
		sendEmail:   emailjob.NewSendEmailHandler(smtp),
		dailyDigest: dashboardJob.NewDigestHandler(c.ApplicationService, c.ContactService, c.Composer, smtp),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSendEmail, h.sendEmail.ProcessTask)
	mux.HandleFunc(shared.TypeDailyDigest, h.dailyDigest.ProcessTask)
}

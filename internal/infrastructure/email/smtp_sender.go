package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"qbrain-backend/internal/config"
	"qbrain-backend/pkg/logger"
)

// SMTPSender gửi mail qua SMTP (STARTTLS trên port 587)
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(smtp config.SMTPConfig, from string) *SMTPSender {
	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Pass)
	d.TLSConfig = &tls.Config{
		ServerName:         smtp.Host,
		InsecureSkipVerify: smtp.InsecureSkipVerify,
	}
	if from == "" {
		from = smtp.User
	}
	return &SMTPSender{dialer: d, from: from}
}

func (s *SMTPSender) Send(ctx context.Context, req EmailRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := s.buildMessage(req)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.ErrorWith("Failed to send email", err, map[string]interface{}{
			"to":        req.To,
			"subject":   req.Subject,
			"smtp_host": s.dialer.Host,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email sent", map[string]interface{}{"to": req.To, "subject": req.Subject})
	return nil
}

func (s *SMTPSender) buildMessage(req EmailRequest) (*gomail.Message, error) {
	if len(req.To) == 0 {
		return nil, ErrNoRecipient
	}

	m := gomail.NewMessage()
	if req.FromName != "" {
		m.SetAddressHeader("From", s.from, req.FromName)
	} else {
		m.SetHeader("From", s.from)
	}
	m.SetHeader("To", req.To...)
	if req.ReplyTo != "" {
		m.SetHeader("Reply-To", req.ReplyTo)
	}
	m.SetHeader("Subject", req.Subject)

	contentType := "text/plain"
	if req.IsHTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, req.Body)

	for _, a := range req.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.MimeType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.MimeType}}))
		}
		m.Attach(a.Filename, settings...)
	}
	return m, nil
}

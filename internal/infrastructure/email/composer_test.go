package email

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/config"
	"qbrain-backend/internal/shared"
)

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		AdminEmail:          "admin@qbrain.in",
		From:                "noreply@qbrain.in",
		ContactFromName:     "Qbrain Contact Form",
		ApplicationFromName: "Qbrain Applications",
		TeamFromName:        "Qbrain Team",
	}
}

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(testMailConfig())
	require.NoError(t, err)
	return c
}

func TestComposer_ContactNotification(t *testing.T) {
	c := newTestComposer(t)

	req, err := c.ContactNotification(ContactData{
		Name:    "Priya",
		Email:   "priya@example.com",
		Subject: "Collab\r\nBcc: evil@example.com",
		Message: "Hello <script>alert(1)</script>\nSecond line",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@qbrain.in"}, req.To)
	assert.Equal(t, "priya@example.com", req.ReplyTo)
	assert.Equal(t, "Qbrain Contact Form", req.FromName)
	assert.Equal(t, "New Contact Message: Collab Bcc: evil@example.com", req.Subject)
	assert.True(t, req.IsHTML)
	assert.NotContains(t, req.Body, "<script>")
	assert.Contains(t, req.Body, "&lt;script&gt;")
	assert.Contains(t, req.Body, "<br>Second line")
	assert.Contains(t, req.Body, "New Contact Message")
}

func TestComposer_ContactAutoReply(t *testing.T) {
	c := newTestComposer(t)

	req, err := c.ContactAutoReply(ContactData{Name: "Priya", Email: "priya@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"priya@example.com"}, req.To)
	assert.Equal(t, "Thank you for contacting Qbrain", req.Subject)
	assert.Equal(t, "Qbrain Team", req.FromName)
	assert.Contains(t, req.Body, "Hi Priya,")
}

func TestComposer_NoAdminEmail(t *testing.T) {
	cfg := testMailConfig()
	cfg.AdminEmail = ""
	c, err := NewComposer(cfg)
	require.NoError(t, err)

	_, err = c.ContactNotification(ContactData{Name: "a", Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrNoAdmin)
	_, err = c.ApplicationNotification(ApplicationData{FullName: "a"}, nil)
	assert.ErrorIs(t, err, ErrNoAdmin)
	_, err = c.Digest("", DigestData{})
	assert.ErrorIs(t, err, ErrNoAdmin)
}

func TestComposer_ApplicationNotification(t *testing.T) {
	c := newTestComposer(t)
	score := 80
	resume := &Attachment{Filename: "cv.pdf", Content: []byte("%PDF"), MimeType: "application/pdf"}

	req, err := c.ApplicationNotification(ApplicationData{
		FullName:      "Arjun Rao",
		Email:         "arjun@example.com",
		PreferredRole: "AI/ML Engineer",
		Motivation:    "I love robots",
		QuizScore:     &score,
		PortfolioURL:  "javascript:alert(1)",
	}, resume)
	require.NoError(t, err)

	assert.Equal(t, "New Team Application - Arjun Rao", req.Subject)
	assert.Equal(t, "Qbrain Applications", req.FromName)
	assert.Contains(t, req.Body, "80%")
	assert.NotContains(t, req.Body, "javascript:alert")
	require.Len(t, req.Attachments, 1)
	assert.Equal(t, "cv.pdf", req.Attachments[0].Filename)
}

func TestComposer_ApplicationNotification_QuizNotCompleted(t *testing.T) {
	c := newTestComposer(t)

	req, err := c.ApplicationNotification(ApplicationData{FullName: "A", Email: "a@b.co"}, nil)
	require.NoError(t, err)
	assert.Contains(t, req.Body, "Not completed")
	assert.Empty(t, req.Attachments)
}

func TestComposer_ApplicationConfirmation(t *testing.T) {
	c := newTestComposer(t)

	req, err := c.ApplicationConfirmation(ApplicationData{FullName: "Arjun", Email: "arjun@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arjun@example.com"}, req.To)
	assert.Equal(t, "Application Received - Qbrain Team", req.Subject)
	assert.Contains(t, req.Body, "Hi Arjun,")
}

func TestComposer_Digest(t *testing.T) {
	c := newTestComposer(t)

	req, err := c.Digest("", DigestData{
		Date:                "2025-03-01",
		NewApplications:     []DigestApplication{{FullName: "A", Email: "a@x.io", PreferredRole: "IoT"}},
		NewMessages:         []DigestMessage{{Name: "B", Email: "b@x.io", Subject: "Hi"}},
		PendingApplications: 4,
		UnreadMessages:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@qbrain.in"}, req.To)
	assert.Equal(t, "Qbrain Daily Digest - 2025-03-01", req.Subject)
	assert.Contains(t, req.Body, "A (a@x.io) - IoT")
	assert.Contains(t, req.Body, "B (b@x.io): Hi")
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "smtp.test", Port: 587, User: "bot@qbrain.in"}, "")

	m, err := s.buildMessage(EmailRequest{
		To:          []string{"admin@qbrain.in"},
		ReplyTo:     "priya@example.com",
		FromName:    "Qbrain Contact Form",
		Subject:     "New Contact Message: Hi",
		Body:        "<p>hi</p>",
		IsHTML:      true,
		Attachments: []Attachment{{Filename: "cv.pdf", Content: []byte("%PDF"), MimeType: "application/pdf"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, `From: "Qbrain Contact Form" <bot@qbrain.in>`)
	assert.Contains(t, raw, "Reply-To: priya@example.com")
	assert.Contains(t, raw, "Subject: New Contact Message: Hi")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, `filename="cv.pdf"`)

	_, err = s.buildMessage(EmailRequest{Subject: "x"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

type fakeSender struct {
	fail map[string]bool
	sent []EmailRequest
}

func (f *fakeSender) Send(_ context.Context, req EmailRequest) error {
	if f.fail[req.To[0]] {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, req)
	return nil
}

func TestSendAll_ContinuesAfterFailure(t *testing.T) {
	f := &fakeSender{fail: map[string]bool{"a@x.io": true}}

	n, err := SendAll(context.Background(), f,
		EmailRequest{To: []string{"a@x.io"}},
		EmailRequest{To: []string{"b@x.io"}},
	)
	assert.Equal(t, 1, n)
	assert.Error(t, err)
	require.Len(t, f.sent, 1)
	assert.Equal(t, "b@x.io", f.sent[0].To[0])
}

type fakeEnqueuer struct {
	taskType string
	payload  interface{}
	err      error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, taskType string, payload interface{}, _ ...asynq.Option) (string, error) {
	f.taskType = taskType
	f.payload = payload
	return "task-1", f.err
}

func TestQueueSender(t *testing.T) {
	q := &fakeEnqueuer{}
	s := NewQueueSender(q)

	req := EmailRequest{To: []string{"a@x.io"}, Subject: "Hi"}
	require.NoError(t, s.Send(context.Background(), req))
	assert.Equal(t, shared.TypeSendEmail, q.taskType)
	assert.Equal(t, req, q.payload)

	assert.ErrorIs(t, s.Send(context.Background(), EmailRequest{}), ErrNoRecipient)

	q.err = errors.New("redis down")
	err := s.Send(context.Background(), req)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "redis down"))
}

package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"qbrain-backend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tplContactNotification     = "contact_notification.html"
	tplContactAutoReply        = "contact_autoreply.html"
	tplApplicationNotification = "application_notification.html"
	tplApplicationConfirmation = "application_confirmation.html"
	tplDigest                  = "digest.html"
)

var templateFuncs = template.FuncMap{
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"quizScore": func(score *int) string {
		if score == nil {
			return "Not completed"
		}
		return fmt.Sprintf("%d%%", *score)
	},
}

type page struct {
	Title   string
	Heading string
	Footer  string
	Data    interface{}
}

// Composer render các email transactional thành EmailRequest
type Composer struct {
	templates map[string]*template.Template
	mail      config.MailConfig
}

func NewComposer(mail config.MailConfig) (*Composer, error) {
	names := []string{
		tplContactNotification,
		tplContactAutoReply,
		tplApplicationNotification,
		tplApplicationConfirmation,
		tplDigest,
	}
	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse email template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Composer{templates: templates, mail: mail}, nil
}

// AdminEmail là người nhận các email thông báo
func (c *Composer) AdminEmail() string { return c.mail.AdminEmail }

func (c *Composer) render(name string, p page) (string, error) {
	var buf bytes.Buffer
	if err := c.templates[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return buf.String(), nil
}

// ContactNotification gửi cho admin, Reply-To là người gửi form
func (c *Composer) ContactNotification(d ContactData) (EmailRequest, error) {
	if c.mail.AdminEmail == "" {
		return EmailRequest{}, ErrNoAdmin
	}
	body, err := c.render(tplContactNotification, page{
		Title:   "New Contact Message - Qbrain",
		Heading: "New Contact Message",
		Footer:  "This message was sent from the Qbrain website contact form.",
		Data:    d,
	})
	if err != nil {
		return EmailRequest{}, err
	}
	return EmailRequest{
		To:       []string{c.mail.AdminEmail},
		ReplyTo:  d.Email,
		FromName: c.mail.ContactFromName,
		Subject:  "New Contact Message: " + oneLine(d.Subject),
		Body:     body,
		IsHTML:   true,
	}, nil
}

func (c *Composer) ContactAutoReply(d ContactData) (EmailRequest, error) {
	body, err := c.render(tplContactAutoReply, page{
		Title:   "Thank you for contacting Qbrain",
		Heading: "Thank You!",
		Footer:  "This is an automated response, please do not reply.",
		Data:    d,
	})
	if err != nil {
		return EmailRequest{}, err
	}
	return EmailRequest{
		To:       []string{d.Email},
		FromName: c.mail.TeamFromName,
		Subject:  "Thank you for contacting Qbrain",
		Body:     body,
		IsHTML:   true,
	}, nil
}

// ApplicationNotification gửi cho admin, đính kèm CV nếu có
func (c *Composer) ApplicationNotification(d ApplicationData, resume *Attachment) (EmailRequest, error) {
	if c.mail.AdminEmail == "" {
		return EmailRequest{}, ErrNoAdmin
	}
	body, err := c.render(tplApplicationNotification, page{
		Title:   "New Team Application - Qbrain",
		Heading: "New Team Application",
		Footer:  "This application was submitted from the Qbrain website.",
		Data:    d,
	})
	if err != nil {
		return EmailRequest{}, err
	}
	req := EmailRequest{
		To:       []string{c.mail.AdminEmail},
		ReplyTo:  d.Email,
		FromName: c.mail.ApplicationFromName,
		Subject:  "New Team Application - " + oneLine(d.FullName),
		Body:     body,
		IsHTML:   true,
	}
	if resume != nil {
		req.Attachments = []Attachment{*resume}
	}
	return req, nil
}

func (c *Composer) ApplicationConfirmation(d ApplicationData) (EmailRequest, error) {
	body, err := c.render(tplApplicationConfirmation, page{
		Title:   "Application Received - Qbrain Team",
		Heading: "Application Received",
		Footer:  "This is an automated response, please do not reply.",
		Data:    d,
	})
	if err != nil {
		return EmailRequest{}, err
	}
	return EmailRequest{
		To:       []string{d.Email},
		FromName: c.mail.TeamFromName,
		Subject:  "Application Received - Qbrain Team",
		Body:     body,
		IsHTML:   true,
	}, nil
}

// Digest gửi tới to (rỗng -> admin email)
func (c *Composer) Digest(to string, d DigestData) (EmailRequest, error) {
	if to == "" {
		to = c.mail.AdminEmail
	}
	if to == "" {
		return EmailRequest{}, ErrNoAdmin
	}
	body, err := c.render(tplDigest, page{
		Title:   "Qbrain Daily Digest",
		Heading: "Daily Digest",
		Footer:  "Sent by the Qbrain worker.",
		Data:    d,
	})
	if err != nil {
		return EmailRequest{}, err
	}
	return EmailRequest{
		To:       []string{to},
		FromName: c.mail.TeamFromName,
		Subject:  "Qbrain Daily Digest - " + d.Date,
		Body:     body,
		IsHTML:   true,
	}, nil
}

// oneLine bỏ CR/LF để tránh header injection trong Subject
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

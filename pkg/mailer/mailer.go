package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Mailer sends HTML email.
type Mailer interface {
	Send(ctx context.Context, to, replyTo, subject, htmlBody string) error
	IsConfigured() bool
}

type smtpMailer struct {
	cfg      Config
	logger   *slog.Logger
	attempts int
	dial     func(m *gomail.Message) error
}

func New(cfg Config, logger *slog.Logger) Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &smtpMailer{
		cfg:      cfg,
		logger:   logger,
		attempts: 3,
		dial:     func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

func (s *smtpMailer) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.From != ""
}

// Send retries with exponential backoff (1s, 2s, 4s) until ctx is done.
func (s *smtpMailer) Send(ctx context.Context, to, replyTo, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("smtp is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, s.cfg.FromName))
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 0; attempt < s.attempts; attempt++ {
		if lastErr = s.dial(m); lastErr == nil {
			s.logger.Info("email sent", "to", to, "subject", subject)
			return nil
		}

		delay := time.Duration(1<<attempt) * time.Second
		s.logger.Warn("email send failed", "to", to, "attempt", attempt+1, "retry_in", delay, "error", lastErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("email send cancelled: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to send email to %s after %d attempts: %w", to, s.attempts, lastErr)
}

type ContactEmailData struct {
	OwnerName   string
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New message from your portfolio</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Hi {{.OwnerName}}, you have a new message</h2>
    <p><strong>From:</strong> {{.SenderName}} ({{.SenderEmail}})</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <div style="background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc;">{{.Message}}</div>
    <p style="color: #888; font-size: 12px;">Reply to this email to answer {{.SenderName}} directly.</p>
  </div>
</body>
</html>`))

func RenderContactEmail(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render contact email: %w", err)
	}
	return body.String(), nil
}

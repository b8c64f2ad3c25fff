package mailer

import (
	"context"
	"fmt"

	"rental-management-backend/internal/config"
	"rental-management-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Message is a single outbound email
type Message struct {
	ToEmail   string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer delivers email messages
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Enabled() bool
}

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer sends email through the SendGrid v3 API
type SendGridMailer struct {
	client    sendClient
	fromName  string
	fromEmail string
	sandbox   bool
}

// New returns a SendGrid mailer when an API key is configured, otherwise a no-op mailer
func New(cfg *config.Config) Mailer {
	if !cfg.EmailEnabled() {
		return NoopMailer{}
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName:  cfg.SendGridFromName,
		fromEmail: cfg.SendGridFromEmail,
		sandbox:   cfg.SendGridSandbox,
	}
}

// Enabled always reports true for SendGrid
func (m *SendGridMailer) Enabled() bool { return true }

// Send delivers msg; non-2xx responses are returned as errors
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	email := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)
	if m.sandbox {
		settings := mail.NewMailSettings()
		settings.SetSandboxMode(mail.NewSetting(true))
		email.SetMailSettings(settings)
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected email: status %d: %s", resp.StatusCode, resp.Body)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      msg.ToEmail,
		"subject": msg.Subject,
		"sandbox": m.sandbox,
	}).Debug("email sent")
	return nil
}

// NoopMailer drops every message
type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error { return nil }
func (NoopMailer) Enabled() bool                       { return false }

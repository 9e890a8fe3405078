package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when no delivery channel is set up.
var ErrNotConfigured = errors.New("contact delivery not configured")

// SMTPSettings holds the mail server and mailbox used for delivery.
type SMTPSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	// To receives the submissions.
	To string
}

// Enabled reports whether credentials are present.
func (s SMTPSettings) Enabled() bool {
	return s.User != "" && s.Password != ""
}

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender mails submissions to the site owner.
type SMTPSender struct {
	settings SMTPSettings
	sendMail sendMailFunc
}

// NewSMTPSender returns a sender for settings. Host defaults to
// smtp.gmail.com and port to 587; To defaults to User.
func NewSMTPSender(settings SMTPSettings) *SMTPSender {
	if settings.Host == "" {
		settings.Host = "smtp.gmail.com"
	}
	if settings.Port == "" {
		settings.Port = "587"
	}
	if settings.To == "" {
		settings.To = settings.User
	}
	return &SMTPSender{settings: settings, sendMail: smtp.SendMail}
}

// Name identifies the delivery channel in logs and metrics.
func (s *SMTPSender) Name() string { return "smtp" }

// Send mails sub. smtp.SendMail does not take a context; ctx is only checked
// before dialing.
func (s *SMTPSender) Send(ctx context.Context, sub Submission) error {
	if !s.settings.Enabled() {
		return fmt.Errorf("smtp credentials missing: %w", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.settings.User, s.settings.Password, s.settings.Host)
	addr := s.settings.Host + ":" + s.settings.Port
	if err := s.sendMail(addr, auth, s.settings.User, []string{s.settings.To}, s.compose(sub)); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func (s *SMTPSender) compose(sub Submission) []byte {
	subject := "Portfolio Contact: " + headerValue(sub.Name)
	if sub.Subject != "" {
		subject += " - " + headerValue(sub.Subject)
	}

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Message)

	return []byte("To: " + s.settings.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.settings.User + "\r\n" +
		"Reply-To: " + headerValue(sub.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerValue strips line breaks so form input cannot inject headers.
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// nopSender fails every submission with ErrNotConfigured.
type nopSender struct{}

func (nopSender) Name() string { return "none" }

func (nopSender) Send(context.Context, Submission) error { return ErrNotConfigured }

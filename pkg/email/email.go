package email

import (
	"fmt"
	"net/smtp"

	"job-finder-backend/config"
)

// Notifier is the outbound-mail seam the usecases depend on; tests swap in a
// mock.
type Notifier interface {
	Send(to, subject, htmlBody string) error
	IsConfigured() bool
}

// Service sends email via SMTP.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// Send delivers a single HTML email.
func (s *Service) Send(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: No-reply <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks whether the service has a usable SMTP configuration.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

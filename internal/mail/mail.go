// Package mail delivers plain-text emails over SMTP.
package mail

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends a subject/body email to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds the relay credentials.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// SMTPMailer sends through an authenticated SMTP relay. Sending is a blocking
// call; there is no queue or retry around it.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a plain-text email.
func (m *SMTPMailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.cfg.Username
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// Package mail provides outbound transactional mail delivery.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"horizon/config"
	"horizon/internal/domain/service"
	"horizon/internal/errors"
)

// smtpSender delivers mail over plain SMTP with PLAIN auth. It is safe for
// concurrent use; each Send opens its own connection.
type smtpSender struct {
	cfg  *config.SMTPConfig
	auth smtp.Auth
}

// NewSMTPSender creates an SMTP-backed MailSender.
func NewSMTPSender(cfg *config.SMTPConfig) (service.MailSender, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("smtp port must be between 1 and 65535")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		cfg:  cfg,
		auth: auth,
	}, nil
}

// Send delivers a plain-text mail to a single recipient.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before send")
	}

	message := s.buildMessage(to, subject, body)
	serverAddr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	if err := smtp.SendMail(serverAddr, s.auth, s.cfg.From, []string{to}, message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

// buildMessage creates the MIME-formatted mail message.
func (s *smtpSender) buildMessage(to, subject, body string) []byte {
	var message strings.Builder

	message.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	message.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	message.WriteString("\r\n")
	message.WriteString(body)

	return []byte(message.String())
}

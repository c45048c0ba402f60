package service

import "context"

// MailSender delivers transactional mail (magic links, password resets).
type MailSender interface {
	// Send delivers a plain-text mail to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}

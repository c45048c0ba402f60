package mail

import (
	"context"
	"log/slog"

	"horizon/config"
	"horizon/internal/domain/service"

	"go.uber.org/fx"
)

// logSender writes mail to the log instead of delivering it. Used in
// development where no SMTP relay exists; the magic link is readable
// straight from the log output.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a MailSender that only logs.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

// Send logs the mail instead of delivering it.
func (s *logSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "[LogMail] Mail delivery disabled, logging instead",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}

// SenderParams holds dependencies for the MailSender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSender selects the MailSender implementation based on configuration.
func NewSender(params SenderParams) (service.MailSender, error) {
	if params.Config.SMTP == nil || params.Config.SMTP.Host == "" {
		params.Logger.Info("SMTP not configured, using log mail sender")

		return NewLogSender(params.Logger), nil
	}

	return NewSMTPSender(params.Config.SMTP)
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSender),
)

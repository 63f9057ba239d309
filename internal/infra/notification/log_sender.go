package notification

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/service"
)

// logSender writes mail to the log instead of delivering it. Development only.
type logSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg *service.MailMessage) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Mail not delivered (log provider)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.HTMLBody),
	)

	return nil
}

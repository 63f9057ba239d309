package notification

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

// sendMail is a seam for testing smtp.SendMail.
var sendMail = smtp.SendMail

// smtpSender delivers mail synchronously through an SMTP relay.
type smtpSender struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *slog.Logger
}

// NewSMTPSender uses PLAIN auth when mail.smtp.username is set.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	smtpCfg := cfg.Mail.SMTP

	var auth smtp.Auth
	if smtpCfg.Username != "" {
		auth = smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	}

	return &smtpSender{
		addr:   smtpCfg.Addr(),
		from:   cfg.Mail.From,
		auth:   auth,
		logger: logger,
	}
}

func (s *smtpSender) Send(ctx context.Context, msg *service.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := sendMail(s.addr, s.auth, s.from, []string{msg.To}, buildMIMEMessage(s.from, msg, time.Now())); err != nil {
		return errors.Wrapf(err, "failed to send mail via %s", s.addr)
	}

	s.logger.InfoContext(ctx, "Mail sent",
		slog.String("subject", msg.Subject),
		slog.String("relay", s.addr),
	)

	return nil
}

// buildMIMEMessage renders an RFC 5322 message with an HTML body.
func buildMIMEMessage(from string, msg *service.MailMessage, now time.Time) []byte {
	var b strings.Builder

	headers := [][2]string{
		{"From", from},
		{"To", msg.To},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", now.Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
	}
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.HTMLBody, "\n", "\r\n"))

	return []byte(b.String())
}

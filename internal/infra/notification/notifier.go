// Package notification renders OTP emails and hands them to the configured delivery channel.
package notification

import (
	"context"
	"html/template"

	"catalog/config"
	"catalog/internal/domain/service"
)

// mailNotifier renders OTP mail and passes it to a MailSender.
type mailNotifier struct {
	sender  service.MailSender
	baseURL string
}

// NewNotifier builds the Notifier with links rooted at mail.baseURL.
func NewNotifier(cfg *config.Config, sender service.MailSender) service.Notifier {
	return &mailNotifier{sender: sender, baseURL: cfg.Mail.BaseURL}
}

func (n *mailNotifier) SendVerificationOTP(ctx context.Context, email, otp string) error {
	return n.send(ctx, email, verificationSubject, verificationTemplate, mailView{
		Code: otp,
		Link: otpLink(n.baseURL, "/auth/verify-account", email, otp),
	})
}

func (n *mailNotifier) SendPasswordResetOTP(ctx context.Context, email, otp string) error {
	return n.send(ctx, email, resetSubject, resetTemplate, mailView{
		Code: otp,
		Link: otpLink(n.baseURL, "/password/reset", email, otp),
	})
}

func (n *mailNotifier) send(ctx context.Context, to, subject string, tmpl *template.Template, view mailView) error {
	body, err := render(tmpl, view)
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, &service.MailMessage{To: to, Subject: subject, HTMLBody: body})
}

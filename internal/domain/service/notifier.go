package service

import "context"

// Notifier delivers OTP codes to the owner of an email address.
type Notifier interface {
	SendVerificationOTP(ctx context.Context, email, otp string) error
	SendPasswordResetOTP(ctx context.Context, email, otp string) error
}

// MailMessage is a rendered email ready for delivery.
type MailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// MailSender hands a rendered message to a delivery channel.
type MailSender interface {
	Send(ctx context.Context, msg *MailMessage) error
}

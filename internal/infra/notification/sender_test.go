package notification

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/service"
	mockService "catalog/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestBuildMIMEMessage(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := string(buildMIMEMessage("shop@example.com", &service.MailMessage{
		To:       "ann@example.com",
		Subject:  "Verify your account",
		HTMLBody: "<p>hi</p>\n<p>there</p>",
	}, now))

	head, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, head, "From: shop@example.com\r\n")
	assert.Contains(t, head, "To: ann@example.com\r\n")
	assert.Contains(t, head, "Subject: Verify your account\r\n")
	assert.Contains(t, head, "MIME-Version: 1.0\r\n")
	assert.Contains(t, head, `Content-Type: text/html; charset="UTF-8"`)
	assert.Contains(t, head, "Date: Fri, 01 Mar 2024 12:00:00 +0000")
	assert.Equal(t, "<p>hi</p>\r\n<p>there</p>", body)
}

func TestBuildMIMEMessage_EncodesNonASCIISubject(t *testing.T) {
	raw := string(buildMIMEMessage("a@example.com", &service.MailMessage{To: "b@example.com", Subject: "驗證帳號"}, time.Now()))

	assert.Contains(t, raw, "Subject: =?utf-8?q?")
}

func TestSMTPSender_Send(t *testing.T) {
	original := sendMail
	t.Cleanup(func() { sendMail = original })

	cfg := &config.Config{}
	cfg.Mail.From = "shop@example.com"
	cfg.Mail.SMTP = config.SMTPConfig{Host: "smtp.example.com", Port: 2525, Username: "user", Password: "secret"}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotAuth smtp.Auth
	sendMail = func(addr string, a smtp.Auth, from string, to []string, _ []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo = addr, a, from, to

		return nil
	}

	sender := NewSMTPSender(cfg, discardLogger)
	err := sender.Send(context.Background(), &service.MailMessage{To: "ann@example.com", Subject: "s", HTMLBody: "b"})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:2525", gotAddr)
	assert.Equal(t, "shop@example.com", gotFrom)
	assert.Equal(t, []string{"ann@example.com"}, gotTo)
	assert.NotNil(t, gotAuth)
}

func TestSMTPSender_Failure(t *testing.T) {
	original := sendMail
	t.Cleanup(func() { sendMail = original })

	sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	cfg := &config.Config{}
	cfg.Mail.SMTP = config.SMTPConfig{Host: "localhost", Port: 25}

	err := NewSMTPSender(cfg, discardLogger).Send(context.Background(), &service.MailMessage{To: "ann@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	original := sendMail
	t.Cleanup(func() { sendMail = original })

	sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called for a canceled context")

		return nil
	}

	cfg := &config.Config{}
	cfg.Mail.SMTP = config.SMTPConfig{Host: "localhost", Port: 25}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSMTPSender(cfg, discardLogger).Send(ctx, &service.MailMessage{To: "ann@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueueSender_Send(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	ctx, _ := deliverycontext.WithRequestScope(context.Background(), "req-42", slog.Default())
	msg := &service.MailMessage{To: "ann@example.com", Subject: "Verify your account", HTMLBody: "<p>1</p>"}

	publisher.EXPECT().PublishMailEvent(ctx, mock.MatchedBy(func(event *service.MailEvent) bool {
		return event.ID != "" && event.RequestID == "req-42" && event.Message == *msg
	})).Return(nil)

	require.NoError(t, NewQueueSender(publisher).Send(ctx, msg))
}

func TestLogSender_Send(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := NewLogSender(logger).Send(context.Background(), &service.MailMessage{To: "ann@example.com", Subject: "Verify your account"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "to=ann@example.com")
}

func TestNewMailSender(t *testing.T) {
	tests := []struct {
		provider string
		wantType any
		wantErr  bool
	}{
		{provider: constants.MailProviderSMTP, wantType: &smtpSender{}},
		{provider: constants.MailProviderPubSub, wantType: &queueSender{}},
		{provider: constants.MailProviderLog, wantType: &logSender{}},
		{provider: "carrier-pigeon", wantErr: true},
		{provider: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Mail.Provider = tt.provider

			sender, err := NewMailSender(SenderParams{
				Config:    cfg,
				Logger:    discardLogger,
				Publisher: mockService.NewMockEventPublisher(t),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, sender)
		})
	}
}

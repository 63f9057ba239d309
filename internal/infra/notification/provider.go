package notification

import (
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for the configured MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// NewMailSender selects the delivery channel named by mail.provider.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	switch provider := params.Config.Mail.Provider; provider {
	case constants.MailProviderSMTP:
		return NewSMTPSender(params.Config, params.Logger), nil
	case constants.MailProviderPubSub:
		return NewQueueSender(params.Publisher), nil
	case constants.MailProviderLog:
		params.Logger.Warn("Mail provider is 'log': OTP mail will only be written to the log")

		return NewLogSender(params.Logger), nil
	case "":
		return nil, errors.New("mail.provider is not set")
	default:
		return nil, errors.Errorf("unknown mail provider: %s", provider)
	}
}

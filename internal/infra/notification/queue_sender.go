package notification

import (
	"context"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/service"

	"github.com/google/uuid"
)

// queueSender enqueues mail for the mail worker instead of sending inline.
type queueSender struct {
	publisher service.EventPublisher
}

func NewQueueSender(publisher service.EventPublisher) service.MailSender {
	return &queueSender{publisher: publisher}
}

func (s *queueSender) Send(ctx context.Context, msg *service.MailMessage) error {
	return s.publisher.PublishMailEvent(ctx, &service.MailEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Message:   *msg,
	})
}

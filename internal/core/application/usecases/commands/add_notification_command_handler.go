package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// AddNotificationCommandHandler stamps the entry with the current time and
// stores it unread. The order reference is not resolved.
type AddNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	now        func() time.Time
}

func NewAddNotificationCommandHandler(uowFactory NotificationUoWFactory) AddNotificationCommandHandler {
	return AddNotificationCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h AddNotificationCommandHandler) Handle(ctx context.Context, cmd AddNotificationCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n, err := notification.NewNotification(kernel.NewUUID(), cmd.Message(), h.now(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}

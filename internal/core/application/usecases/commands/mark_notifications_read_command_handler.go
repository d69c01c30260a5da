package commands

import (
	"context"
)

type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{uowFactory: uowFactory}
}

// Handle never fails because of unknown ids; only storage errors surface.
func (h MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if len(cmd.IDs()) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	found, err := repo.GetByIDs(ctx, cmd.IDs())
	if err != nil {
		return err
	}

	for _, n := range found {
		if !n.MarkRead() {
			continue
		}
		if err = repo.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

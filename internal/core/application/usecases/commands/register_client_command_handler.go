package commands

import (
	"context"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
)

type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{uowFactory: uowFactory}
}

// Handle stores a new client seen today. A malformed email is rejected here,
// by the client constructor, before any transaction starts.
func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.RestoreClient(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.Email(), cmd.Measurements(), client.LastSeenToday)
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

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

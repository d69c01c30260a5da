package commands

import (
	"context"
)

type UpdateClientMeasurementsCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewUpdateClientMeasurementsCommandHandler(uowFactory ClientUoWFactory) UpdateClientMeasurementsCommandHandler {
	return UpdateClientMeasurementsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateClientMeasurementsCommandHandler) Handle(ctx context.Context, cmd UpdateClientMeasurementsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClientRepository()
	c, err := repo.Get(ctx, cmd.ClientID())
	if err != nil {
		return notFound(ErrClientNotFound, err)
	}

	c.UpdateMeasurements(cmd.Measurements())

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

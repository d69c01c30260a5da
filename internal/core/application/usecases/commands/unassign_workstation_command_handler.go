package commands

import (
	"context"
)

// UnassignWorkstationCommandHandler clears an order's assignment. It is not
// announced.
type UnassignWorkstationCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUnassignWorkstationCommandHandler(uowFactory OrderUoWFactory) UnassignWorkstationCommandHandler {
	return UnassignWorkstationCommandHandler{uowFactory: uowFactory}
}

func (h UnassignWorkstationCommandHandler) Handle(ctx context.Context, cmd UnassignWorkstationCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return notFound(ErrOrderNotFound, err)
	}

	o.UnassignWorkstation()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

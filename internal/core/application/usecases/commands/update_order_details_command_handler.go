package commands

import (
	"context"
)

type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	if err = o.SetPrice(cmd.Price()); err != nil {
		return err
	}
	o.SetNotes(cmd.Notes())

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// CreateOrderCommandHandler adds an unassigned order with a fresh id and a
// ticket no other order carries. Creating an order does not notify anyone.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ticket, err := issueTicketID(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		ticket,
		cmd.ClientID(),
		cmd.ModelID(),
		cmd.Date(),
		cmd.Status(),
		cmd.Price(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

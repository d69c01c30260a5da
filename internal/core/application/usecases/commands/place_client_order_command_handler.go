package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// PlaceClientOrderCommandHandler registers the visitor, opens a
// "En attente de validation" order dated now and announces it, all in one
// transaction.
type PlaceClientOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   services.OrderNotifier
	now        func() time.Time
}

func NewPlaceClientOrderCommandHandler(uowFactory UoWFactory, notifier services.OrderNotifier) PlaceClientOrderCommandHandler {
	return PlaceClientOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (h PlaceClientOrderCommandHandler) Handle(ctx context.Context, cmd PlaceClientOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.Email())
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

	orderRepo := uow.OrderRepository()
	ticket, err := issueTicketID(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), ticket, c.ID(), cmd.ModelID(), h.now(), order.PendingValidation, nil, "")
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	title, err := modelTitle(ctx, uow.CatalogRepository(), o)
	if err != nil {
		return nil, err
	}

	n, err := h.notifier.ClientOrderPlaced(o, title)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

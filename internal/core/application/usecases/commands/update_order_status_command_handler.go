package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies status changes under the configured
// transition policy. Moving an order to "En finition" or "Prêt à livrer" adds
// a notification in the same transaction, worded with the model's title; a
// model missing from the catalog yields an empty title rather than a failure.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, order.Permissive, services.NewOrderNotifier())
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.ReadyToDeliver)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderNotFound) {
//	    // nothing changed
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     order.TransitionPolicy
	notifier   services.OrderNotifier
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy order.TransitionPolicy,
	notifier services.OrderNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	// A workstation only sees its own orders; anything else does not exist for it.
	if ws := cmd.WorkstationID(); ws != nil && !o.IsAssignedTo(*ws) {
		return notFound(ErrOrderNotFound, errs.NewObjectNotFoundError("order", cmd.OrderID().String()))
	}

	if _, err = o.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Status().IsNotifiable() {
		title, err := modelTitle(ctx, uow.CatalogRepository(), o)
		if err != nil {
			return err
		}

		n, err := h.notifier.StatusChanged(o, title)
		if err != nil {
			return err
		}

		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// modelTitle resolves the title of the order's model, empty when the model
// is no longer in the catalog.
func modelTitle(ctx context.Context, repo ports.CatalogRepository, o *order.Order) (string, error) {
	m, err := repo.Get(ctx, o.ModelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Title(), nil
}

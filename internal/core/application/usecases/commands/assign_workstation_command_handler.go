package commands

import (
	"context"

	"atelier/internal/core/domain/services"
)

// AssignWorkstationCommandHandler overwrites the order's workstation and
// announces every successful call, even a reassignment to the same
// workstation. Unknown orders or workstations leave everything unchanged.
type AssignWorkstationCommandHandler struct {
	uowFactory UoWFactory
	notifier   services.OrderNotifier
}

func NewAssignWorkstationCommandHandler(uowFactory UoWFactory, notifier services.OrderNotifier) AssignWorkstationCommandHandler {
	return AssignWorkstationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h AssignWorkstationCommandHandler) Handle(ctx context.Context, cmd AssignWorkstationCommand) error {
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

	ws, err := uow.WorkstationRepository().Get(ctx, cmd.WorkstationID())
	if err != nil {
		return notFound(ErrWorkstationNotFound, err)
	}

	if err = o.AssignWorkstation(ws.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	n, err := h.notifier.WorkstationAssigned(o, ws)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

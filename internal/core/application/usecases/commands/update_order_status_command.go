package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand or NewUpdateOrderStatusAtWorkstationCommand",
)

// UpdateOrderStatusCommand moves an order to another production stage. When
// issued from a workstation dashboard, it only applies to orders assigned to
// that workstation.
type UpdateOrderStatusCommand struct {
	orderID       kernel.UUID
	status        order.Status
	workstationID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewUpdateOrderStatusAtWorkstationCommand scopes the change to the orders
// of one workstation.
func NewUpdateOrderStatusAtWorkstationCommand(
	orderID kernel.UUID,
	workstationID kernel.UUID,
	status order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd, err := NewUpdateOrderStatusCommand(orderID, status)
	if err = errors.Join(err, workstationID.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.workstationID = &workstationID
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// WorkstationID is nil for manager-issued changes.
func (c UpdateOrderStatusCommand) WorkstationID() *kernel.UUID {
	return c.workstationID
}

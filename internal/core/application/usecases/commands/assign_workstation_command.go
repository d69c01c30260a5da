package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAssignWorkstationCommandIsNotConstructed = errors.New(
	"AssignWorkstationCommand must be created via NewAssignWorkstationCommand constructor",
)

// AssignWorkstationCommand routes an order to a workstation, replacing any
// previous assignment.
type AssignWorkstationCommand struct {
	orderID       kernel.UUID
	workstationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignWorkstationCommand(orderID, workstationID kernel.UUID) (AssignWorkstationCommand, error) {
	if err := errors.Join(orderID.Validate(), workstationID.Validate()); err != nil {
		return AssignWorkstationCommand{}, err
	}
	return AssignWorkstationCommand{
		orderID:       orderID,
		workstationID: workstationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AssignWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkstationCommandIsNotConstructed)
}

func (c AssignWorkstationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignWorkstationCommand) WorkstationID() kernel.UUID {
	return c.workstationID
}

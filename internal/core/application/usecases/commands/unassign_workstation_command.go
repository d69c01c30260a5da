package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrUnassignWorkstationCommandIsNotConstructed = errors.New(
	"UnassignWorkstationCommand must be created via NewUnassignWorkstationCommand constructor",
)

// UnassignWorkstationCommand takes an order off its workstation.
type UnassignWorkstationCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnassignWorkstationCommand(orderID kernel.UUID) (UnassignWorkstationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnassignWorkstationCommand{}, err
	}
	return UnassignWorkstationCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c UnassignWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrUnassignWorkstationCommandIsNotConstructed)
}

func (c UnassignWorkstationCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrUpdateClientMeasurementsCommandIsNotConstructed = errors.New(
	"UpdateClientMeasurementsCommand must be created via NewUpdateClientMeasurementsCommand constructor",
)

type UpdateClientMeasurementsCommand struct {
	clientID     kernel.UUID
	measurements client.Measurements

	guard guard.ConstructorGuard
}

// NewUpdateClientMeasurementsCommand takes already validated measurements;
// see client.NewMeasurements.
func NewUpdateClientMeasurementsCommand(clientID kernel.UUID, m client.Measurements) (UpdateClientMeasurementsCommand, error) {
	if err := clientID.Validate(); err != nil {
		return UpdateClientMeasurementsCommand{}, err
	}
	return UpdateClientMeasurementsCommand{
		clientID:     clientID,
		measurements: m,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientMeasurementsCommandIsNotConstructed)
}

func (c UpdateClientMeasurementsCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c UpdateClientMeasurementsCommand) Measurements() client.Measurements {
	return c.measurements
}

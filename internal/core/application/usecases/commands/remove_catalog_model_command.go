package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRemoveCatalogModelCommandIsNotConstructed = errors.New(
	"RemoveCatalogModelCommand must be created via NewRemoveCatalogModelCommand constructor",
)

// RemoveCatalogModelCommand withdraws a model. Orders already placed on it
// keep their model id and show no title from then on.
type RemoveCatalogModelCommand struct {
	modelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCatalogModelCommand(modelID kernel.UUID) (RemoveCatalogModelCommand, error) {
	if err := modelID.Validate(); err != nil {
		return RemoveCatalogModelCommand{}, err
	}
	return RemoveCatalogModelCommand{modelID: modelID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCatalogModelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCatalogModelCommandIsNotConstructed)
}

func (c RemoveCatalogModelCommand) ModelID() kernel.UUID {
	return c.modelID
}

package commands

import (
	"errors"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAddCatalogModelCommandIsNotConstructed = errors.New(
	"AddCatalogModelCommand must be created via NewAddCatalogModelCommand constructor",
)

// AddCatalogModelCommand publishes a new garment model.
type AddCatalogModelCommand struct {
	model *catalog.Model

	guard guard.ConstructorGuard
}

// NewAddCatalogModelCommand validates the params the way the catalog does and
// assigns the model its id.
func NewAddCatalogModelCommand(p catalog.ModelParams) (AddCatalogModelCommand, error) {
	m, err := catalog.NewModel(kernel.NewUUID(), p)
	if err != nil {
		return AddCatalogModelCommand{}, err
	}
	return AddCatalogModelCommand{model: m, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCatalogModelCommand) Validate() error {
	return c.guard.Validate(ErrAddCatalogModelCommandIsNotConstructed)
}

func (c AddCatalogModelCommand) Model() *catalog.Model {
	return c.model
}

package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/guard"
)

var ErrCreateWorkstationCommandIsNotConstructed = errors.New(
	"CreateWorkstationCommand must be created via NewCreateWorkstationCommand constructor",
)

// CreateWorkstationCommand opens a new post. Its access code is generated.
type CreateWorkstationCommand struct {
	name string

	guard guard.ConstructorGuard
}

func NewCreateWorkstationCommand(name string) (CreateWorkstationCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateWorkstationCommand{}, workstation.ErrNameIsRequired
	}
	return CreateWorkstationCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkstationCommandIsNotConstructed)
}

func (c CreateWorkstationCommand) Name() string {
	return c.name
}

package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
)

// CreateWorkstationCommandHandler draws access codes until one is free, so no
// two workstations share a code.
type CreateWorkstationCommandHandler struct {
	uowFactory WorkstationUoWFactory
}

func NewCreateWorkstationCommandHandler(uowFactory WorkstationUoWFactory) CreateWorkstationCommandHandler {
	return CreateWorkstationCommandHandler{uowFactory: uowFactory}
}

func (h CreateWorkstationCommandHandler) Handle(ctx context.Context, cmd CreateWorkstationCommand) (*workstation.Workstation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkstationRepository()
	code, err := issueAccessCode(ctx, repo)
	if err != nil {
		return nil, err
	}

	ws, err := workstation.NewWorkstation(kernel.NewUUID(), cmd.Name(), code)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, ws); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ws, nil
}

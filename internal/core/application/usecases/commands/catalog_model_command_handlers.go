package commands

import (
	"context"

	"atelier/internal/core/domain/model/catalog"
)

type AddCatalogModelCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddCatalogModelCommandHandler(uowFactory CatalogUoWFactory) AddCatalogModelCommandHandler {
	return AddCatalogModelCommandHandler{uowFactory: uowFactory}
}

func (h AddCatalogModelCommandHandler) Handle(ctx context.Context, cmd AddCatalogModelCommand) (*catalog.Model, error) {
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

	if err := uow.CatalogRepository().Add(ctx, cmd.Model()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Model(), nil
}

type RemoveCatalogModelCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRemoveCatalogModelCommandHandler(uowFactory CatalogUoWFactory) RemoveCatalogModelCommandHandler {
	return RemoveCatalogModelCommandHandler{uowFactory: uowFactory}
}

func (h RemoveCatalogModelCommandHandler) Handle(ctx context.Context, cmd RemoveCatalogModelCommand) error {
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

	if err := uow.CatalogRepository().Remove(ctx, cmd.ModelID()); err != nil {
		return notFound(ErrModelNotFound, err)
	}

	return uow.Commit(ctx)
}

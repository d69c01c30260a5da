// Package commands contains the operations that change the shop's state.
// Every command is built by a constructor that validates its input, and every
// handler runs inside one unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Each handler declares the narrowest unit of work it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WorkstationRepoFactory interface {
		WorkstationRepository() ports.WorkstationRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderUoW serves commands that touch orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	WorkstationUoW interface {
		TxManager
		WorkstationRepoFactory
	}

	WorkstationUoWFactory interface {
		Create() WorkstationUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW spans every aggregate. Commands that emit notifications use it so
	// the notification is written in the same transaction as the change.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	o, err := uow.OrderRepository().Get(ctx, id)
	//	// ... change o, then add the notification
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WorkstationRepoFactory
		NotificationRepoFactory
		ClientRepoFactory
		CatalogRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

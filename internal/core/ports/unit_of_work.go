package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned after
// Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback after Commit only returns an error, so handlers defer it.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WorkstationRepository() WorkstationRepository
	NotificationRepository() NotificationRepository
	ClientRepository() ClientRepository
	CatalogRepository() CatalogRepository
}

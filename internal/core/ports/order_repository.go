// Package ports defines the persistence contracts of the shop's aggregates.
// Adapters in internal/adapters/out implement them; command handlers depend on
// them through the unit of work.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository stores orders. Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order. A duplicate ticket id fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, assignment, price and notes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// TicketExists reports whether a ticket id is already issued.
	TicketExists(ctx context.Context, ticket kernel.TicketID) (bool, error)
}

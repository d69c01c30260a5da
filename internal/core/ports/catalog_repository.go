package ports

import (
	"context"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
)

// CatalogRepository stores the garment models clients order from.
type CatalogRepository interface {
	Add(ctx context.Context, m *catalog.Model) error

	// Get returns errs.ErrObjectNotFound when the model was removed; orders
	// keep pointing at it regardless.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Model, error)

	// Remove takes the model out of the catalog. It returns
	// errs.ErrObjectNotFound when there is nothing to remove.
	Remove(ctx context.Context, id kernel.UUID) error
}

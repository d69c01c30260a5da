package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// NotificationRepository is the append-only notification log.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists the read flag.
	Update(ctx context.Context, n *notification.Notification) error

	// GetByIDs returns the entries that exist among ids, ignoring the rest.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*notification.Notification, error)
}

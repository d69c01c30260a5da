package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

type ListNotificationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListNotificationsQuery() ListNotificationsQuery {
	return ListNotificationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

type NotificationView struct {
	ID      kernel.UUID
	Message string
	Date    time.Time
	Read    bool
	OrderID *kernel.UUID
}

// ListNotificationsQueryResponse is the manager's inbox: the whole log,
// newest first, and how many entries are still unread.
type ListNotificationsQueryResponse struct {
	Items  []NotificationView
	Unread int
}

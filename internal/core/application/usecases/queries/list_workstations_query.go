package queries

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListWorkstationsQueryIsNotConstructed = errors.New(
	"ListWorkstationsQuery must be created via NewListWorkstationsQuery constructor",
)

type ListWorkstationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListWorkstationsQuery() ListWorkstationsQuery {
	return ListWorkstationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListWorkstationsQuery) Validate() error {
	return q.guard.Validate(ErrListWorkstationsQueryIsNotConstructed)
}

// WorkstationView is shown to managers only, access code included.
// OpenOrders counts assigned orders that are not delivered.
type WorkstationView struct {
	ID         kernel.UUID
	Name       string
	AccessCode string
	OpenOrders int
}

type ListWorkstationsQueryHandler struct {
	db *gorm.DB
}

func NewListWorkstationsQueryHandler(db *gorm.DB) ListWorkstationsQueryHandler {
	return ListWorkstationsQueryHandler{db: db}
}

func (h ListWorkstationsQueryHandler) Handle(ctx context.Context, query ListWorkstationsQuery) ([]WorkstationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.name,
			w.access_code,
			COUNT(o.id)
		FROM workstations w
		LEFT JOIN orders o ON o.workstation_id = w.id AND o.status != ?
		GROUP BY w.id, w.name, w.access_code
		ORDER BY w.name, w.id
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]WorkstationView, 0)
	for rows.Next() {
		var (
			view WorkstationView
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &view.Name, &view.AccessCode, &view.OpenOrders); err != nil {
			return nil, err
		}
		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

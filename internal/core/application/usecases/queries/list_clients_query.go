package queries

import (
	"context"
	"database/sql"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// ClientView is a registry entry. OrderCount counts every order the client
// ever placed, delivered ones included.
type ClientView struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Email        string
	Measurements MeasurementsView
	LastSeen     string
	OrderCount   int
}

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			c.email,
			c.measurement_height,
			c.measurement_chest,
			c.measurement_waist,
			c.measurement_hips,
			c.measurement_inseam,
			c.last_seen,
			COUNT(o.id)
		FROM clients c
		LEFT JOIN orders o ON o.client_id = c.id
		GROUP BY
			c.id, c.name, c.phone, c.email,
			c.measurement_height, c.measurement_chest, c.measurement_waist,
			c.measurement_hips, c.measurement_inseam, c.last_seen
		ORDER BY c.name, c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ClientView, 0)
	for rows.Next() {
		var (
			view            ClientView
			id              uuid.UUID
			email, lastSeen sql.NullString
		)

		err = rows.Scan(
			&id,
			&view.Name,
			&view.Phone,
			&email,
			&view.Measurements.Height,
			&view.Measurements.Chest,
			&view.Measurements.Waist,
			&view.Measurements.Hips,
			&view.Measurements.Inseam,
			&lastSeen,
			&view.OrderCount,
		)
		if err != nil {
			return nil, err
		}
		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		view.Email = email.String
		view.LastSeen = lastSeen.String

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

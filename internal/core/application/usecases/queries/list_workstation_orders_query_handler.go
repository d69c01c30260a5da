package queries

import (
	"context"
	"database/sql"

	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListWorkstationOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListWorkstationOrdersQueryHandler(db *gorm.DB) ListWorkstationOrdersQueryHandler {
	return ListWorkstationOrdersQueryHandler{db: db}
}

// Handle returns the orders assigned to the workstation that are not
// delivered yet, newest first.
func (h ListWorkstationOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkstationOrdersQuery,
) ([]WorkstationOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.ticket_id,
			c.name,
			c.phone,
			COALESCE(c.measurement_height, 0),
			COALESCE(c.measurement_chest, 0),
			COALESCE(c.measurement_waist, 0),
			COALESCE(c.measurement_hips, 0),
			COALESCE(c.measurement_inseam, 0),
			m.title,
			m.pattern_link,
			o.status,
			o.placed_at,
			o.notes
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN catalog_models m ON m.id = o.model_id
		WHERE o.workstation_id = ?
		ORDER BY o.placed_at DESC, o.id DESC
	`, query.workstationID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]WorkstationOrderView, 0)
	for rows.Next() {
		var (
			view                           WorkstationOrderView
			id                             uuid.UUID
			clientName, clientPhone        sql.NullString
			modelTitle, patternLink, notes sql.NullString
			status                         int
		)

		err = rows.Scan(
			&id,
			&view.TicketID,
			&clientName,
			&clientPhone,
			&view.Measurements.Height,
			&view.Measurements.Chest,
			&view.Measurements.Waist,
			&view.Measurements.Hips,
			&view.Measurements.Inseam,
			&modelTitle,
			&patternLink,
			&status,
			&view.Date,
			&notes,
		)
		if err != nil {
			return nil, err
		}
		if !order.Status(status).IsOpen() {
			continue
		}

		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		view.ClientName = clientName.String
		view.ClientPhone = clientPhone.String
		view.ModelTitle = modelTitle.String
		view.PatternLink = patternLink.String
		view.Status = order.Status(status)
		view.Notes = notes.String

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

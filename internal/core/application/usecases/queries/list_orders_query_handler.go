package queries

import (
	"context"
	"database/sql"
	"strings"

	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the management list straight from the tables,
// bypassing the aggregates.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns matching orders newest first. Orders sharing a date are
// ordered by descending id, which follows creation order for generated ids.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if query.status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(*query.status))
	}
	switch query.workstation.kind {
	case filterUnassigned:
		conditions = append(conditions, "o.workstation_id IS NULL")
	case filterWorkstation:
		conditions = append(conditions, "o.workstation_id = ?")
		args = append(args, query.workstation.id.Bytes())
	}

	stmt := `
		SELECT
			o.id,
			o.ticket_id,
			o.client_id,
			c.name,
			o.model_id,
			m.title,
			o.workstation_id,
			w.name,
			o.status,
			o.placed_at,
			o.price,
			o.notes
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN catalog_models m ON m.id = o.model_id
		LEFT JOIN workstations w ON w.id = o.workstation_id`
	if len(conditions) > 0 {
		stmt += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	stmt += "\n\t\tORDER BY o.placed_at DESC, o.id DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                                    OrderView
			id, clientID, modelID                   uuid.UUID
			workstationID                           uuid.NullUUID
			clientName, modelTitle, workstationName sql.NullString
			status                                  int
			notes                                   sql.NullString
		)

		err = rows.Scan(
			&id,
			&view.TicketID,
			&clientID,
			&clientName,
			&modelID,
			&modelTitle,
			&workstationID,
			&workstationName,
			&status,
			&view.Date,
			&view.Price,
			&notes,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if view.ClientID, err = toKernelUUID(clientID); err != nil {
			return nil, err
		}
		if view.ModelID, err = toKernelUUID(modelID); err != nil {
			return nil, err
		}
		if view.WorkstationID, err = toOptionalKernelUUID(workstationID); err != nil {
			return nil, err
		}
		view.ClientName = clientName.String
		view.ModelTitle = modelTitle.String
		view.WorkstationName = workstationName.String
		view.Status = order.Status(status)
		view.Notes = notes.String

		if view.matches(query.search) {
			views = append(views, view)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, message, created_at, is_read, order_id
		FROM notifications
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	resp := ListNotificationsQueryResponse{Items: make([]NotificationView, 0)}
	for rows.Next() {
		var (
			view    NotificationView
			id      uuid.UUID
			orderID uuid.NullUUID
		)

		if err = rows.Scan(&id, &view.Message, &view.Date, &view.Read, &orderID); err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		if view.ID, err = toKernelUUID(id); err != nil {
			return ListNotificationsQueryResponse{}, err
		}
		if view.OrderID, err = toOptionalKernelUUID(orderID); err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		if !view.Read {
			resp.Unread++
		}
		resp.Items = append(resp.Items, view)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return resp, nil
}

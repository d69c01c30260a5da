package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(c echo.Context) error {
	inbox, err := s.handlers.ListNotifications.Handle(c.Request().Context(), queries.NewListNotificationsQuery())
	if err != nil {
		return s.failWith(c, err)
	}

	items := make([]Notification, len(inbox.Items))
	for i, v := range inbox.Items {
		items[i] = Notification{
			ID:      v.ID.String(),
			Message: v.Message,
			Date:    v.Date,
			Read:    v.Read,
			OrderID: optionalID(v.OrderID),
		}
	}
	return c.JSON(http.StatusOK, NotificationList{Items: items, Unread: inbox.Unread})
}

// CreateNotification handles POST /api/v1/notifications.
func (s *Server) CreateNotification(c echo.Context) error {
	var req NewNotification
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	var orderID *kernel.UUID
	if req.OrderID != nil {
		id, err := parseID("order id", *req.OrderID)
		if err != nil {
			return s.failWith(c, err)
		}
		orderID = &id
	}

	cmd, err := commands.NewAddNotificationCommand(req.Message, orderID)
	if err != nil {
		return s.failWith(c, err)
	}
	n, err := s.handlers.AddNotification.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failWith(c, err)
	}

	return c.JSON(http.StatusCreated, Notification{
		ID:      n.ID().String(),
		Message: n.Message(),
		Date:    n.Date(),
		Read:    n.IsRead(),
		OrderID: optionalID(n.OrderID()),
	})
}

// MarkNotificationsRead handles POST /api/v1/notifications/read. Unknown
// ids are ignored.
func (s *Server) MarkNotificationsRead(c echo.Context) error {
	var req MarkRead
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := parseID("notification id", raw)
		if err != nil {
			return s.failWith(c, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(ids)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.MarkNotificationsRead.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

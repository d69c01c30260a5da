package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders?status=&workstation=&q=
func (s *Server) GetOrders(c echo.Context) error {
	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" && raw != "Tous" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return s.failWith(c, err)
		}
		status = &parsed
	}

	filter, err := queries.WorkstationFilterFromString(c.QueryParam("workstation"))
	if err != nil {
		return s.failWith(c, err)
	}

	query, err := queries.NewListOrdersQuery(status, filter, c.QueryParam("q"))
	if err != nil {
		return s.failWith(c, err)
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failWith(c, err)
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = Order{
			ID:              v.ID.String(),
			TicketID:        v.TicketID,
			ClientID:        v.ClientID.String(),
			ClientName:      v.ClientName,
			ModelID:         v.ModelID.String(),
			ModelTitle:      v.ModelTitle,
			WorkstationID:   optionalID(v.WorkstationID),
			WorkstationName: v.WorkstationName,
			Status:          v.Status.String(),
			Date:            v.Date,
			Price:           v.Price,
			Notes:           v.Notes,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. Status defaults to the first
// stage and date to now.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	clientID, err := parseID("client id", req.ClientID)
	if err != nil {
		return s.failWith(c, err)
	}
	modelID, err := parseID("model id", req.ModelID)
	if err != nil {
		return s.failWith(c, err)
	}

	status := order.PendingValidation
	if req.Status != "" {
		if status, err = order.StatusFromString(req.Status); err != nil {
			return s.failWith(c, err)
		}
	}
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, modelID, date, status, req.Price, req.Notes)
	if err != nil {
		return s.failWith(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failWith(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedOrder{
		ID:       created.ID().String(),
		TicketID: created.TicketID().String(),
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	var req StatusChange
	if err = c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.failWith(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignWorkstation handles PUT /api/v1/orders/:id/workstation.
func (s *Server) AssignWorkstation(c echo.Context) error {
	orderID, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	var req WorkstationAssignment
	if err = c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	workstationID, err := parseID("workstation id", req.WorkstationID)
	if err != nil {
		return s.failWith(c, err)
	}

	cmd, err := commands.NewAssignWorkstationCommand(orderID, workstationID)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.AssignWorkstation.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UnassignWorkstation handles DELETE /api/v1/orders/:id/workstation.
func (s *Server) UnassignWorkstation(c echo.Context) error {
	orderID, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	cmd, err := commands.NewUnassignWorkstationCommand(orderID)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.UnassignWorkstation.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:id. Both fields are
// written; a missing price clears it.
func (s *Server) UpdateOrderDetails(c echo.Context) error {
	orderID, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	var req OrderDetails
	if err = c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, req.Price, req.Notes)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.UpdateOrderDetails.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

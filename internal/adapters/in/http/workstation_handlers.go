package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetWorkstations handles GET /api/v1/workstations.
func (s *Server) GetWorkstations(c echo.Context) error {
	views, err := s.handlers.ListWorkstations.Handle(c.Request().Context(), queries.NewListWorkstationsQuery())
	if err != nil {
		return s.failWith(c, err)
	}

	response := make([]Workstation, len(views))
	for i, v := range views {
		response[i] = Workstation{
			ID:         v.ID.String(),
			Name:       v.Name,
			AccessCode: v.AccessCode,
			OpenOrders: v.OpenOrders,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateWorkstation handles POST /api/v1/workstations. The generated access
// code is returned once here and afterwards only in the manager listing.
func (s *Server) CreateWorkstation(c echo.Context) error {
	var req NewWorkstation
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateWorkstationCommand(req.Name)
	if err != nil {
		return s.failWith(c, err)
	}
	ws, err := s.handlers.CreateWorkstation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failWith(c, err)
	}

	return c.JSON(http.StatusCreated, Workstation{
		ID:         ws.ID().String(),
		Name:       ws.Name(),
		AccessCode: ws.AccessCode().String(),
	})
}

// GetWorkstationOrders handles GET /api/v1/workstation/orders for the
// workstation the access code belongs to.
func (s *Server) GetWorkstationOrders(c echo.Context) error {
	ws := sessionFrom(c).Workstation()

	query, err := queries.NewListWorkstationOrdersQuery(ws.ID())
	if err != nil {
		return s.failWith(c, err)
	}
	views, err := s.handlers.ListWorkstationOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failWith(c, err)
	}

	response := make([]WorkstationOrder, len(views))
	for i, v := range views {
		response[i] = WorkstationOrder{
			ID:          v.ID.String(),
			TicketID:    v.TicketID,
			ClientName:  v.ClientName,
			ClientPhone: v.ClientPhone,
			Measurements: Measurements{
				Height: v.Measurements.Height,
				Chest:  v.Measurements.Chest,
				Waist:  v.Measurements.Waist,
				Hips:   v.Measurements.Hips,
				Inseam: v.Measurements.Inseam,
			},
			ModelTitle:  v.ModelTitle,
			PatternLink: v.PatternLink,
			Status:      v.Status.String(),
			Date:        v.Date,
			Notes:       v.Notes,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateWorkstationOrderStatus handles PATCH
// /api/v1/workstation/orders/:id/status. Orders of other workstations are
// answered with 404.
func (s *Server) UpdateWorkstationOrderStatus(c echo.Context) error {
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

	ws := sessionFrom(c).Workstation()
	cmd, err := commands.NewUpdateOrderStatusAtWorkstationCommand(orderID, ws.ID(), status)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

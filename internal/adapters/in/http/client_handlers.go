package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/client"

	"github.com/labstack/echo/v4"
)

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(c echo.Context) error {
	views, err := s.handlers.ListClients.Handle(c.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return s.failWith(c, err)
	}

	response := make([]Client, len(views))
	for i, v := range views {
		response[i] = Client{
			ID:    v.ID.String(),
			Name:  v.Name,
			Phone: v.Phone,
			Email: v.Email,
			Measurements: Measurements{
				Height: v.Measurements.Height,
				Chest:  v.Measurements.Chest,
				Waist:  v.Measurements.Waist,
				Hips:   v.Measurements.Hips,
				Inseam: v.Measurements.Inseam,
			},
			LastSeen:   v.LastSeen,
			OrderCount: v.OrderCount,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(c echo.Context) error {
	var req NewClient
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	var m client.Measurements
	if req.Measurements != nil {
		var err error
		m, err = req.Measurements.toDomain()
		if err != nil {
			return s.failWith(c, err)
		}
	}

	cmd, err := commands.NewRegisterClientCommand(req.Name, req.Phone, req.Email, m)
	if err != nil {
		return s.failWith(c, err)
	}
	registered, err := s.handlers.RegisterClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failWith(c, err)
	}

	rm := registered.Measurements()
	return c.JSON(http.StatusCreated, Client{
		ID:    registered.ID().String(),
		Name:  registered.Name(),
		Phone: registered.Phone(),
		Email: registered.Email(),
		Measurements: Measurements{
			Height: rm.Height(),
			Chest:  rm.Chest(),
			Waist:  rm.Waist(),
			Hips:   rm.Hips(),
			Inseam: rm.Inseam(),
		},
		LastSeen: registered.LastSeen(),
	})
}

// UpdateClientMeasurements handles PUT /api/v1/clients/:id/measurements.
func (s *Server) UpdateClientMeasurements(c echo.Context) error {
	clientID, err := parseID("client id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	var req Measurements
	if err = c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}
	m, err := req.toDomain()
	if err != nil {
		return s.failWith(c, err)
	}

	cmd, err := commands.NewUpdateClientMeasurementsCommand(clientID, m)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.UpdateClientMeasurements.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (m Measurements) toDomain() (client.Measurements, error) {
	return client.NewMeasurements(m.Height, m.Chest, m.Waist, m.Hips, m.Inseam)
}

package http

import (
	"net/http"

	"atelier/internal/core/application/access"
	"atelier/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// CreatePlacement handles POST /api/v1/placements. The order is not created
// right away: it is scheduled and placed by the intake job once the delay
// elapsed, unless the placement or its session is cancelled first. Clients
// pass X-Session-ID to group placements; otherwise a new visitor session is
// opened and its id returned.
func (s *Server) CreatePlacement(c echo.Context) error {
	var req NewPlacement
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	sessionID := access.NewSession(s.gate).ID()
	if raw := c.Request().Header.Get(sessionHeader); raw != "" {
		id, err := parseID("session id", raw)
		if err != nil {
			return s.failWith(c, err)
		}
		sessionID = id
	}

	modelID, err := parseID("model id", req.ModelID)
	if err != nil {
		return s.failWith(c, err)
	}
	cmd, err := commands.NewPlaceClientOrderCommand(modelID, req.Name, req.Phone, req.Email)
	if err != nil {
		return s.failWith(c, err)
	}

	p, err := s.placements.Schedule(sessionID, cmd, s.intakeDelay)
	if err != nil {
		return s.failWith(c, err)
	}

	c.Response().Header().Set(sessionHeader, sessionID.String())
	return c.JSON(http.StatusAccepted, Placement{
		ID:        p.ID.String(),
		SessionID: p.Session.String(),
		DueAt:     p.DueAt,
	})
}

// CancelPlacement handles DELETE /api/v1/placements/:id. Placements already
// executed or unknown answer 404.
func (s *Server) CancelPlacement(c echo.Context) error {
	id, err := parseID("placement id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}
	if !s.placements.Cancel(id) {
		return s.fail(c, http.StatusNotFound, "Placement not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// EndSession handles DELETE /api/v1/sessions/:id and drops every pending
// placement of that session.
func (s *Server) EndSession(c echo.Context) error {
	id, err := parseID("session id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}
	return c.JSON(http.StatusOK, CancelledPlacements{Cancelled: s.placements.CancelSession(id)})
}

// Login handles POST /api/v1/login. It checks a manager secret or a
// workstation access code and reports which mode it opens; the code itself
// must still be sent with every request.
func (s *Server) Login(c echo.Context) error {
	var req Login
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	sess := access.NewSession(s.gate)
	if sess.LoginManager(req.Code) {
		return c.JSON(http.StatusOK, SessionInfo{Mode: sess.Mode().String()})
	}

	ok, err := sess.LoginWorkstation(c.Request().Context(), req.Code)
	if err != nil {
		return s.failWith(c, err)
	}
	if !ok {
		return s.fail(c, http.StatusUnauthorized, "Invalid access code")
	}

	ws := sess.Workstation()
	return c.JSON(http.StatusOK, SessionInfo{
		Mode:            sess.Mode().String(),
		WorkstationID:   ws.ID().String(),
		WorkstationName: ws.Name(),
	})
}

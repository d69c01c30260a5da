package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register mounts middleware and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(s.logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/login", s.Login)
	api.GET("/catalog", s.GetCatalog)
	api.POST("/placements", s.CreatePlacement)
	api.DELETE("/placements/:id", s.CancelPlacement)
	api.DELETE("/sessions/:id", s.EndSession)

	manager := api.Group("", s.requireManager())
	manager.GET("/orders", s.GetOrders)
	manager.POST("/orders", s.CreateOrder)
	manager.PATCH("/orders/:id", s.UpdateOrderDetails)
	manager.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	manager.PUT("/orders/:id/workstation", s.AssignWorkstation)
	manager.DELETE("/orders/:id/workstation", s.UnassignWorkstation)
	manager.GET("/workstations", s.GetWorkstations)
	manager.POST("/workstations", s.CreateWorkstation)
	manager.GET("/notifications", s.GetNotifications)
	manager.POST("/notifications", s.CreateNotification)
	manager.POST("/notifications/read", s.MarkNotificationsRead)
	manager.GET("/clients", s.GetClients)
	manager.POST("/clients", s.RegisterClient)
	manager.PUT("/clients/:id/measurements", s.UpdateClientMeasurements)
	manager.POST("/catalog", s.AddCatalogModel)
	manager.DELETE("/catalog/:id", s.RemoveCatalogModel)

	bench := api.Group("/workstation", s.requireWorkstation())
	bench.GET("/orders", s.GetWorkstationOrders)
	bench.PATCH("/orders/:id/status", s.UpdateWorkstationOrderStatus)
}

// Package http exposes the shop over JSON with echo. Managers and
// workstations authenticate every request with the X-Access-Code header;
// the catalog and client placements are public.
package http

import (
	"log/slog"
	"time"

	"atelier/internal/core/application/access"
	"atelier/internal/core/application/intake"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	UpdateOrderStatus        commands.UpdateOrderStatusCommandHandler
	AssignWorkstation        commands.AssignWorkstationCommandHandler
	UnassignWorkstation      commands.UnassignWorkstationCommandHandler
	UpdateOrderDetails       commands.UpdateOrderDetailsCommandHandler
	CreateWorkstation        commands.CreateWorkstationCommandHandler
	AddNotification          commands.AddNotificationCommandHandler
	MarkNotificationsRead    commands.MarkNotificationsReadCommandHandler
	UpdateClientMeasurements commands.UpdateClientMeasurementsCommandHandler
	RegisterClient           commands.RegisterClientCommandHandler
	AddCatalogModel          commands.AddCatalogModelCommandHandler
	RemoveCatalogModel       commands.RemoveCatalogModelCommandHandler

	ListOrders            queries.ListOrdersQueryHandler
	ListWorkstationOrders queries.ListWorkstationOrdersQueryHandler
	ListWorkstations      queries.ListWorkstationsQueryHandler
	ListNotifications     queries.ListNotificationsQueryHandler
	ListCatalog           queries.ListCatalogQueryHandler
	ListClients           queries.ListClientsQueryHandler
}

type Server struct {
	handlers    Handlers
	gate        *access.Gate
	placements  *intake.Queue
	intakeDelay time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

func NewServer(
	handlers Handlers,
	gate *access.Gate,
	placements *intake.Queue,
	intakeDelay time.Duration,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers:    handlers,
		gate:        gate,
		placements:  placements,
		intakeDelay: intakeDelay,
		now:         time.Now,
		logger:      logger.With("component", "http"),
	}
}

func parseID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

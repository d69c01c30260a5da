package cmd

import (
	"context"
	"log/slog"

	httpin "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/core/application/access"
	"atelier/internal/core/application/intake"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/core/domain/services"
	"atelier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *gormdb.GormUnitOfWorkFactory
	policy     order.TransitionPolicy
	notifier   services.OrderNotifier
	placements *intake.Queue
	logger     *slog.Logger
}

// NewCompositionRoot expects configs to have passed Validate.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	policy, _ := configs.TransitionPolicy()
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: gormdb.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		notifier:   services.NewOrderNotifier(),
		placements: intake.NewQueue(),
		logger:     logger,
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() *gormdb.GormUnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) Placements() *intake.Queue {
	return c.placements
}

// Commands

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uoWFactory(), c.policy, c.notifier)
}

func (c *CompositionRoot) CreateAssignWorkstationCommandHandler() commands.AssignWorkstationCommandHandler {
	return commands.NewAssignWorkstationCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUnassignWorkstationCommandHandler() commands.UnassignWorkstationCommandHandler {
	return commands.NewUnassignWorkstationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlaceClientOrderCommandHandler() commands.PlaceClientOrderCommandHandler {
	return commands.NewPlaceClientOrderCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateWorkstationCommandHandler() commands.CreateWorkstationCommandHandler {
	var f commands.WorkstationUoWFactory = FuncWorkstationUoWFactory(func() commands.WorkstationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkstationCommandHandler(f)
}

func (c *CompositionRoot) CreateAddNotificationCommandHandler() commands.AddNotificationCommandHandler {
	return commands.NewAddNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	return commands.NewMarkNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientMeasurementsCommandHandler() commands.UpdateClientMeasurementsCommandHandler {
	return commands.NewUpdateClientMeasurementsCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateAddCatalogModelCommandHandler() commands.AddCatalogModelCommandHandler {
	return commands.NewAddCatalogModelCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCatalogModelCommandHandler() commands.RemoveCatalogModelCommandHandler {
	return commands.NewRemoveCatalogModelCommandHandler(c.catalogUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkstationOrdersQueryHandler() queries.ListWorkstationOrdersQueryHandler {
	return queries.NewListWorkstationOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkstationsQueryHandler() queries.ListWorkstationsQueryHandler {
	return queries.NewListWorkstationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCatalogQueryHandler() queries.ListCatalogQueryHandler {
	return queries.NewListCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.gormDB)
}

// Access, jobs and HTTP

func (c *CompositionRoot) CreateGate() (*access.Gate, error) {
	dir := FuncWorkstationDirectory(func(ctx context.Context) ([]*workstation.Workstation, error) {
		return c.uowFactory.Create().WorkstationRepository().GetAll(ctx)
	})
	return access.NewGate(c.configs.ManagerCode(), dir)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.placements, c.CreatePlaceClientOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	gate, err := c.CreateGate()
	if err != nil {
		return nil, err
	}

	handlers := httpin.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:        c.CreateUpdateOrderStatusCommandHandler(),
		AssignWorkstation:        c.CreateAssignWorkstationCommandHandler(),
		UnassignWorkstation:      c.CreateUnassignWorkstationCommandHandler(),
		UpdateOrderDetails:       c.CreateUpdateOrderDetailsCommandHandler(),
		CreateWorkstation:        c.CreateCreateWorkstationCommandHandler(),
		AddNotification:          c.CreateAddNotificationCommandHandler(),
		MarkNotificationsRead:    c.CreateMarkNotificationsReadCommandHandler(),
		UpdateClientMeasurements: c.CreateUpdateClientMeasurementsCommandHandler(),
		RegisterClient:           c.CreateRegisterClientCommandHandler(),
		AddCatalogModel:          c.CreateAddCatalogModelCommandHandler(),
		RemoveCatalogModel:       c.CreateRemoveCatalogModelCommandHandler(),

		ListOrders:            c.CreateListOrdersQueryHandler(),
		ListWorkstationOrders: c.CreateListWorkstationOrdersQueryHandler(),
		ListWorkstations:      c.CreateListWorkstationsQueryHandler(),
		ListNotifications:     c.CreateListNotificationsQueryHandler(),
		ListCatalog:           c.CreateListCatalogQueryHandler(),
		ListClients:           c.CreateListClientsQueryHandler(),
	}
	return httpin.NewServer(handlers, gate, c.placements, c.configs.IntakeDelay, c.logger), nil
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkstationUoWFactory func() commands.WorkstationUoW

func (f FuncWorkstationUoWFactory) Create() commands.WorkstationUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWorkstationDirectory func(ctx context.Context) ([]*workstation.Workstation, error)

func (f FuncWorkstationDirectory) GetAll(ctx context.Context) ([]*workstation.Workstation, error) {
	return f(ctx)
}

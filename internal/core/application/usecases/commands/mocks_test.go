package commands_test

import (
	"context"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) TicketExists(ctx context.Context, ticket kernel.TicketID) (bool, error) {
	args := m.Called(ctx, ticket)
	return args.Bool(0), args.Error(1)
}

type MockWorkstationRepository struct{ mock.Mock }

func (m *MockWorkstationRepository) Add(ctx context.Context, ws *workstation.Workstation) error {
	return m.Called(ctx, ws).Error(0)
}

func (m *MockWorkstationRepository) Get(ctx context.Context, id kernel.UUID) (*workstation.Workstation, error) {
	args := m.Called(ctx, id)
	ws, _ := args.Get(0).(*workstation.Workstation)
	return ws, args.Error(1)
}

func (m *MockWorkstationRepository) GetAll(ctx context.Context) ([]*workstation.Workstation, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]*workstation.Workstation)
	return all, args.Error(1)
}

func (m *MockWorkstationRepository) AccessCodeExists(ctx context.Context, code workstation.AccessCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*notification.Notification, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*notification.Notification)
	return found, args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, model *catalog.Model) error {
	return m.Called(ctx, model).Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Model, error) {
	args := m.Called(ctx, id)
	model, _ := args.Get(0).(*catalog.Model)
	return model, args.Error(1)
}

func (m *MockCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkstationRepository() ports.WorkstationRepository {
	return m.Called().Get(0).(ports.WorkstationRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) uow() *MockUoW {
	return m.MethodCalled("Create").Get(0).(*MockUoW)
}

type uowFactory struct{ *MockFactory }

func (f uowFactory) Create() commands.UoW { return f.uow() }

type orderUoWFactory struct{ *MockFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow() }

type notificationUoWFactory struct{ *MockFactory }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow() }

type workstationUoWFactory struct{ *MockFactory }

func (f workstationUoWFactory) Create() commands.WorkstationUoW { return f.uow() }

type clientUoWFactory struct{ *MockFactory }

func (f clientUoWFactory) Create() commands.ClientUoW { return f.uow() }

type catalogUoWFactory struct{ *MockFactory }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow() }

// expectFactory returns a factory handing out uow exactly once.
func expectFactory(uow *MockUoW) *MockFactory {
	f := new(MockFactory)
	f.On("Create").Return(uow).Once()
	return f
}

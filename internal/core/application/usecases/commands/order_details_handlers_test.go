package commands_test

import (
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderOnlyUoW(t *testing.T, o *order.Order, updateErr error) (*MockUoW, *MockOrderRepository) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(updateErr).Once()
	if updateErr == nil {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow, repo
}

func TestUnassignWorkstationCommandHandler_Handle(t *testing.T) {
	o := newOrder(t, "CMD-J1K2L3", order.InSewing)
	require.NoError(t, o.AssignWorkstation(kernel.NewUUID()))
	uow, repo := orderOnlyUoW(t, o, nil)

	h := commands.NewUnassignWorkstationCommandHandler(orderUoWFactory{expectFactory(uow)})
	cmd, err := commands.NewUnassignWorkstationCommand(o.ID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Nil(t, o.Workstation())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUnassignWorkstationCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := commands.NewUnassignWorkstationCommandHandler(orderUoWFactory{expectFactory(uow)})
	cmd, _ := commands.NewUnassignWorkstationCommand(id)

	assert.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrOrderNotFound)
}

func TestUpdateOrderDetailsCommandHandler_Handle(t *testing.T) {
	o := newOrder(t, "CMD-G7H8I9", order.Finishing)
	uow, _ := orderOnlyUoW(t, o, nil)

	h := commands.NewUpdateOrderDetailsCommandHandler(orderUoWFactory{expectFactory(uow)})
	cmd, err := commands.NewUpdateOrderDetailsCommand(o.ID(), ptr[int64](120000), "Ajustement de la longueur de la robe.")
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Equal(t, int64(120000), *o.Price())
	assert.Equal(t, "Ajustement de la longueur de la robe.", o.Notes())
	uow.AssertExpectations(t)
}

func TestUpdateOrderDetailsCommandHandler_Handle_UpdateError(t *testing.T) {
	o := newOrder(t, "CMD-G7H8I9", order.Finishing)
	uow, _ := orderOnlyUoW(t, o, errors.New("update error"))

	h := commands.NewUpdateOrderDetailsCommandHandler(orderUoWFactory{expectFactory(uow)})
	cmd, _ := commands.NewUpdateOrderDetailsCommand(o.ID(), nil, "")

	require.EqualError(t, h.Handle(t.Context(), cmd), "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUpdateOrderDetailsCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewUpdateOrderDetailsCommand(kernel.NewUUID(), ptr[int64](-100), "")

	assert.ErrorIs(t, err, commands.ErrPriceIsNegative)
}

package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/internal/core/application/intake"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlacementHandler struct {
	mock.Mock
}

func (m *MockPlacementHandler) Handle(ctx context.Context, cmd commands.PlaceClientOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func newPlacement(t *testing.T, name string) commands.PlaceClientOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceClientOrderCommand(kernel.NewUUID(), name, "+221 77 000 00 00", "")
	require.NoError(t, err)
	return cmd
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewTicketID(), kernel.NewUUID(), kernel.NewUUID(), time.Now(), order.PendingValidation, nil, "")
	require.NoError(t, err)
	return o
}

func TestClientOrderIntakeJob_RunOnce(t *testing.T) {
	start := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	queue := intake.NewQueueWithClock(func() time.Time { return start })
	handler := new(MockPlacementHandler)
	job := NewClientOrderIntakeJob(queue, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
	job.now = func() time.Time { return start.Add(intake.DefaultDelay) }

	ready := newPlacement(t, "Awa")
	later := newPlacement(t, "Moussa")
	cancelled := newPlacement(t, "Fatou")
	session := kernel.NewUUID()
	_, err := queue.Schedule(session, ready, intake.DefaultDelay)
	require.NoError(t, err)
	_, err = queue.Schedule(session, later, time.Minute)
	require.NoError(t, err)
	p, err := queue.Schedule(session, cancelled, 0)
	require.NoError(t, err)
	require.True(t, queue.Cancel(p.ID))

	handler.On("Handle", mock.Anything, ready).Return(newPlacedOrder(t), nil).Once()

	assert.Equal(t, 1, job.RunOnce(context.Background()))
	assert.Zero(t, job.RunOnce(context.Background()), "already executed")
	assert.Equal(t, 1, queue.Len())
	handler.AssertExpectations(t)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestClientOrderIntakeJob_FailureIsDropped(t *testing.T) {
	queue := intake.NewQueue()
	handler := new(MockPlacementHandler)
	job := NewClientOrderIntakeJob(queue, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))

	failing := newPlacement(t, "Awa")
	ok := newPlacement(t, "Moussa")
	_, err := queue.Schedule(kernel.NewUUID(), failing, 0)
	require.NoError(t, err)
	_, err = queue.Schedule(kernel.NewUUID(), ok, 0)
	require.NoError(t, err)

	handler.On("Handle", mock.Anything, failing).Return(nil, errors.New("db down")).Once()
	handler.On("Handle", mock.Anything, ok).Return(newPlacedOrder(t), nil).Once()

	assert.Equal(t, 1, job.RunOnce(context.Background()))
	assert.Zero(t, queue.Len())
	handler.AssertExpectations(t)
}

func TestJobManager_StartStop(t *testing.T) {
	jm := NewJobManager(intake.NewQueue(), new(MockPlacementHandler), slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

package gormdb_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gormdb.Open("file:" + kernel.NewUUID().String() + "?mode=memory")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewTicketID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now(),
		order.PendingValidation,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func TestOpen_EmptyDSNUsesMemory(t *testing.T) {
	db, err := gormdb.Open("")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Close())
}

func TestGormUnitOfWork_TransactionErrors(t *testing.T) {
	ctx := context.Background()
	uow := gormdb.NewGormUnitOfWorkFactory(openMemory(t)).Create()

	assert.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "second Begin is a no-op")
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction, "rollback after commit")
}

func TestGormUnitOfWork_CommitSpansRepositories(t *testing.T) {
	ctx := context.Background()
	factory := gormdb.NewGormUnitOfWorkFactory(openMemory(t))
	o := createTestOrder(t)
	orderID := o.ID()
	n, err := notification.NewNotification(kernel.NewUUID(), "Nouvelle commande client", time.Now(), &orderID)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.NotificationRepository().Add(ctx, n))
	require.NoError(t, uow.Commit(ctx))

	tracked := uow.(*gormdb.GormUnitOfWork).TrackedAggregates()
	require.Len(t, tracked, 2)
	assert.True(t, o.ID().IsEqual(tracked[0]))
	assert.True(t, n.ID().IsEqual(tracked[1]))

	after := factory.Create()
	_, err = after.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	got, err := after.NotificationRepository().GetByIDs(ctx, []kernel.UUID{n.ID()})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGormUnitOfWork_RollbackDiscardsEverything(t *testing.T) {
	ctx := context.Background()
	factory := gormdb.NewGormUnitOfWorkFactory(openMemory(t))
	o := createTestOrder(t)
	n, err := notification.NewNotification(kernel.NewUUID(), "message", time.Now(), nil)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.NotificationRepository().Add(ctx, n))
	_, err = uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err, "visible inside the transaction")
	require.NoError(t, uow.Rollback(ctx))

	after := factory.Create()
	_, err = after.OrderRepository().Get(ctx, o.ID())
	assert.Error(t, err)
	got, err := after.NotificationRepository().GetByIDs(ctx, []kernel.UUID{n.ID()})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGormUnitOfWork_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	factory := gormdb.NewGormUnitOfWorkFactory(openMemory(t))
	o := createTestOrder(t)

	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, o.IsEqual(got))
}

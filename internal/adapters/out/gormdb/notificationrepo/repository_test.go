package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/adapters/out/gormdb/notificationrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

func newRepository(t *testing.T) *notificationrepo.GormNotificationRepository {
	t.Helper()
	db, err := gormdb.Open("file:" + kernel.NewUUID().String() + "?mode=memory")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return notificationrepo.NewGormNotificationRepository(db, nopTracker{})
}

func TestGormNotificationRepository_AddAndGetByIDs(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	orderID := kernel.NewUUID()
	older, err := notification.NewNotification(kernel.NewUUID(), "Commande CMD-A1B2C3 assignée à Poste Couture 1.", time.Now().Add(-time.Hour), &orderID)
	require.NoError(t, err)
	newer, err := notification.NewNotification(kernel.NewUUID(), "Nouvelle commande client", time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))

	got, err := repo.GetByIDs(ctx, []kernel.UUID{older.ID(), kernel.NewUUID(), newer.ID()})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, newer.ID().IsEqual(got[0].ID()))
	assert.Nil(t, got[0].OrderID())
	assert.True(t, older.ID().IsEqual(got[1].ID()))
	require.NotNil(t, got[1].OrderID())
	assert.True(t, orderID.IsEqual(*got[1].OrderID()))
	assert.False(t, got[1].IsRead())
}

func TestGormNotificationRepository_GetByIDs_Empty(t *testing.T) {
	got, err := newRepository(t).GetByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGormNotificationRepository_Update_ReadFlag(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	n, err := notification.NewNotification(kernel.NewUUID(), "message", time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, n))

	assert.True(t, n.MarkRead())
	require.NoError(t, repo.Update(ctx, n))

	got, err := repo.GetByIDs(ctx, []kernel.UUID{n.ID()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRead())
}

func TestGormNotificationRepository_Update_Unknown(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), "message", time.Now(), nil)
	require.NoError(t, err)

	err = newRepository(t).Update(context.Background(), n)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

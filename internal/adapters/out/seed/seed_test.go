package seed_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/adapters/out/seed"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Decodes(t *testing.T) {
	data, err := seed.Default()

	require.NoError(t, err)
	assert.Len(t, data.Clients, 4)
	assert.Len(t, data.Models, 6)
	assert.Len(t, data.Workstations, 2)
	require.Len(t, data.Orders, 5)
	require.NotNil(t, data.Orders[0].PlacedAt)
	assert.Equal(t, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), data.Orders[0].PlacedAt.UTC())
	assert.Nil(t, data.Orders[2].PlacedAt)
	assert.Equal(t, "Ajustement de la longueur de la robe.", data.Orders[2].Notes)
}

func TestParse_Rejects(t *testing.T) {
	_, err := seed.Parse([]byte("  \n"))
	assert.Error(t, err)

	_, err = seed.Parse([]byte("clients: [unterminated"))
	assert.Error(t, err)
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := gormdb.Open("file:" + kernel.NewUUID().String() + "?mode=memory")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	factory := gormdb.NewGormUnitOfWorkFactory(db)
	data, err := seed.Default()
	require.NoError(t, err)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	added, err := seed.Apply(ctx, factory, data, now)
	require.NoError(t, err)
	assert.Equal(t, 17, added)

	added, err = seed.Apply(ctx, factory, data, now)
	require.NoError(t, err)
	assert.Zero(t, added)

	id, err := kernel.UUIDFromString(data.Orders[2].ID)
	require.NoError(t, err)
	o, err := factory.Create().OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, order.Finishing, o.Status())
	assert.True(t, now.Equal(o.Date()))
	assert.NotNil(t, o.Workstation())

	ws, err := factory.Create().WorkstationRepository().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, "Atelier Broderie", ws[0].Name())
}

func TestApply_InvalidRecordRollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := gormdb.Open("file:" + kernel.NewUUID().String() + "?mode=memory")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	factory := gormdb.NewGormUnitOfWorkFactory(db)

	data, err := seed.Parse([]byte(`
workstations:
  - id: 01890a5d-ac96-774b-bcce-b302099aa001
    name: Poste de Couture 1
    access_code: POSTE-A4B8
  - id: 01890a5d-ac96-774b-bcce-b302099aa002
    name: Atelier Broderie
    access_code: not-a-code
`))
	require.NoError(t, err)

	_, err = seed.Apply(ctx, factory, data, time.Now())
	require.Error(t, err)

	ws, err := factory.Create().WorkstationRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

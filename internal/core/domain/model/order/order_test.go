package order_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewTicketID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2023, 11, 20, 9, 0, 0, 0, time.UTC),
		order.PendingValidation,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func price(v int64) *int64 {
	return &v
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	ticket := kernel.NewTicketID()
	clientID := kernel.NewUUID()
	modelID := kernel.NewUUID()
	date := time.Date(2023, 10, 15, 12, 0, 0, 0, time.FixedZone("WAT", 3600))

	t.Run("should create unassigned order", func(t *testing.T) {
		o, err := order.NewOrder(id, ticket, clientID, modelID, date, order.InSewing, price(165000), "Broderie dorée")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.TicketID().IsEqual(ticket))
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.True(t, o.ModelID().IsEqual(modelID))
		assert.True(t, o.Date().Equal(date))
		assert.Equal(t, time.UTC, o.Date().Location())
		assert.Equal(t, order.InSewing, o.Status())
		assert.Equal(t, int64(165000), *o.Price())
		assert.Equal(t, "Broderie dorée", o.Notes())
		assert.Nil(t, o.Workstation())
	})

	t.Run("should allow missing price", func(t *testing.T) {
		o, err := order.NewOrder(id, ticket, clientID, modelID, date, order.PendingValidation, nil, "")

		require.NoError(t, err)
		assert.Nil(t, o.Price())
	})

	t.Run("should accept a zero price", func(t *testing.T) {
		o, err := order.NewOrder(id, ticket, clientID, modelID, date, order.PendingValidation, price(0), "")

		require.NoError(t, err)
		assert.Equal(t, int64(0), *o.Price())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		o, err := order.NewOrder(id, ticket, clientID, modelID, date, order.PendingValidation, price(-1), "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.NewOrder(id, ticket, clientID, modelID, date, order.Unknown, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.TicketID{}, kernel.UUID{}, kernel.UUID{}, time.Time{}, order.Unknown, price(-5), "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "TicketID must be created")
		assert.Contains(t, err.Error(), "client id")
		assert.Contains(t, err.Error(), "model id")
		assert.Contains(t, err.Error(), "order date")
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "price is invalid")
	})
}

func TestRestoreOrder(t *testing.T) {
	workstationID := kernel.NewUUID()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewTicketID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), order.ReadyToDeliver, price(300000), "", &workstationID,
	)

	require.NoError(t, err)
	assert.True(t, o.IsAssignedTo(workstationID))
	assert.Equal(t, order.ReadyToDeliver, o.Status())

	t.Run("should reject zero workstation id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewTicketID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), order.ReadyToDeliver, nil, "", &zero,
		)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	var zero order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
	assert.NoError(t, newTestOrder(t).Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("permissive accepts any stage", func(t *testing.T) {
		o := newTestOrder(t)

		changed, err := o.ChangeStatus(order.Delivered, order.Permissive)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = o.ChangeStatus(order.InSewing, order.Permissive)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.InSewing, o.Status())
	})

	t.Run("reports unchanged status", func(t *testing.T) {
		o := newTestOrder(t)

		changed, err := o.ChangeStatus(order.PendingValidation, order.Strict)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("strict rejects skipped stages", func(t *testing.T) {
		o := newTestOrder(t)

		changed, err := o.ChangeStatus(order.ReadyToDeliver, order.Strict)

		require.ErrorIs(t, err, order.ErrTransitionIsNotAllowed)
		assert.False(t, changed)
		assert.Equal(t, order.PendingValidation, o.Status())
	})

	t.Run("rejects invalid status under any policy", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ChangeStatus(order.Status(42), order.Permissive)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PendingValidation, o.Status())
	})
}

func TestOrder_AssignWorkstation(t *testing.T) {
	t.Run("should overwrite previous assignment", func(t *testing.T) {
		o := newTestOrder(t)
		first, second := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, o.AssignWorkstation(first))
		require.NoError(t, o.AssignWorkstation(second))

		assert.True(t, o.IsAssignedTo(second))
		assert.False(t, o.IsAssignedTo(first))
	})

	t.Run("should keep assignment on invalid id", func(t *testing.T) {
		o := newTestOrder(t)
		ws := kernel.NewUUID()
		require.NoError(t, o.AssignWorkstation(ws))

		err := o.AssignWorkstation(kernel.UUID{})

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.True(t, o.IsAssignedTo(ws))
	})

	t.Run("should unassign", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignWorkstation(kernel.NewUUID()))

		o.UnassignWorkstation()

		assert.Nil(t, o.Workstation())
	})
}

func TestOrder_Details(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.SetPrice(price(80000)))
	o.SetNotes("Ajustement de la longueur de la robe.")

	p := o.Price()
	*p = 1
	assert.Equal(t, int64(80000), *o.Price())
	assert.Equal(t, "Ajustement de la longueur de la robe.", o.Notes())

	require.Error(t, o.SetPrice(price(-10)))
	assert.Equal(t, int64(80000), *o.Price())

	require.NoError(t, o.SetPrice(nil))
	assert.Nil(t, o.Price())
}

package queries_test

import (
	"context"
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkstationFilterFromString(t *testing.T) {
	for _, raw := range []string{"", "Tous", " Tous "} {
		f, err := queries.WorkstationFilterFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, queries.AllWorkstations(), f, raw)
	}

	f, err := queries.WorkstationFilterFromString("unassigned")
	require.NoError(t, err)
	assert.Equal(t, queries.UnassignedOnly(), f)

	id := kernel.NewUUID()
	f, err = queries.WorkstationFilterFromString(id.String())
	require.NoError(t, err)
	assert.Equal(t, queries.AssignedTo(id), f)

	_, err = queries.WorkstationFilterFromString("poste-1")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvalidStatus(t *testing.T) {
	bad := order.Status(42)

	_, err := queries.NewListOrdersQuery(&bad, queries.AllWorkstations(), "")

	assert.Error(t, err)
}

func TestNewListCatalogQuery_InvalidFilters(t *testing.T) {
	genre := catalog.Genre("Unisexe")
	event := catalog.Event("Plage")

	_, err := queries.NewListCatalogQuery(&genre, &event)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQueries_ZeroValueRejected(t *testing.T) {
	ctx := context.Background()

	_, err := queries.ListOrdersQueryHandler{}.Handle(ctx, queries.ListOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)

	_, err = queries.ListWorkstationOrdersQueryHandler{}.Handle(ctx, queries.ListWorkstationOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrListWorkstationOrdersQueryIsNotConstructed)

	_, err = queries.ListNotificationsQueryHandler{}.Handle(ctx, queries.ListNotificationsQuery{})
	assert.ErrorIs(t, err, queries.ErrListNotificationsQueryIsNotConstructed)

	_, err = queries.ListWorkstationsQueryHandler{}.Handle(ctx, queries.ListWorkstationsQuery{})
	assert.ErrorIs(t, err, queries.ErrListWorkstationsQueryIsNotConstructed)

	_, err = queries.ListCatalogQueryHandler{}.Handle(ctx, queries.ListCatalogQuery{})
	assert.ErrorIs(t, err, queries.ErrListCatalogQueryIsNotConstructed)
}

package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, ticket string, status order.Status) *order.Order {
	t.Helper()
	tid, err := kernel.TicketIDFromString(ticket)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), tid, kernel.NewUUID(), kernel.NewUUID(), time.Now(), status, nil, "")
	require.NoError(t, err)
	return o
}

func newWorkstation(t *testing.T, name string) *workstation.Workstation {
	t.Helper()
	ws, err := workstation.NewWorkstation(kernel.NewUUID(), name, workstation.NewAccessCode())
	require.NoError(t, err)
	return ws
}

func newModel(t *testing.T, title string) *catalog.Model {
	t.Helper()
	m, err := catalog.NewModel(kernel.NewUUID(), catalog.ModelParams{
		Title:      title,
		Genre:      catalog.GenreWomen,
		Event:      catalog.EventDaily,
		Difficulty: catalog.DifficultyIntermediate,
		Fabric:     "Wax Hollandais",
		ImageURLs:  []string{"https://picsum.photos/seed/wax1/800/1200"},
	})
	require.NoError(t, err)
	return m
}

func ptr[T any](v T) *T {
	return &v
}

package catalogrepo_test

import (
	"context"
	"testing"

	"atelier/internal/adapters/out/gormdb"
	"atelier/internal/adapters/out/gormdb/catalogrepo"
	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

func TestGormCatalogRepository(t *testing.T) {
	ctx := context.Background()
	db, err := gormdb.Open("file:" + kernel.NewUUID().String() + "?mode=memory")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	repo := catalogrepo.NewGormCatalogRepository(db, nopTracker{})

	m, err := catalog.NewModel(kernel.NewUUID(), catalog.ModelParams{
		Title:       "Robe Wax Élégance",
		Genre:       catalog.GenreWomen,
		Event:       catalog.EventCeremony,
		Difficulty:  catalog.DifficultyAdvanced,
		Fabric:      "Wax Hollandais",
		Description: "Robe longue cintrée",
		ImageURLs: []string{
			"https://picsum.photos/seed/wax1/800/1200",
			"https://picsum.photos/seed/wax2/800/1200",
		},
		PatternLink: "https://example.com/patrons/robe-wax.pdf",
	})
	require.NoError(t, err)

	t.Run("add and get", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, m))

		got, err := repo.Get(ctx, m.ID())

		require.NoError(t, err)
		assert.Equal(t, m.Title(), got.Title())
		assert.Equal(t, catalog.GenreWomen, got.Genre())
		assert.Equal(t, catalog.EventCeremony, got.Event())
		assert.Equal(t, catalog.DifficultyAdvanced, got.Difficulty())
		assert.Equal(t, m.ImageURLs(), got.ImageURLs())
		assert.Equal(t, "https://picsum.photos/seed/wax1/800/1200", got.CoverImage())
		assert.Equal(t, m.PatternLink(), got.PatternLink())
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, m.ID()))

		_, err := repo.Get(ctx, m.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = repo.Remove(ctx, m.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

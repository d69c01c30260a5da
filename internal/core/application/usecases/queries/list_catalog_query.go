package queries

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListCatalogQueryIsNotConstructed = errors.New("ListCatalogQuery must be created via NewListCatalogQuery constructor")

// ListCatalogQuery is the public catalog, optionally narrowed by genre and
// occasion.
type ListCatalogQuery struct {
	genre *catalog.Genre
	event *catalog.Event
	guard guard.ConstructorGuard
}

func NewListCatalogQuery(genre *catalog.Genre, event *catalog.Event) (ListCatalogQuery, error) {
	var errList []error
	if genre != nil {
		errList = append(errList, genre.Validate())
	}
	if event != nil {
		errList = append(errList, event.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListCatalogQuery{}, err
	}

	return ListCatalogQuery{
		genre: genre,
		event: event,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

type CatalogItemView struct {
	ID          kernel.UUID
	Title       string
	Genre       catalog.Genre
	Event       catalog.Event
	Difficulty  catalog.Difficulty
	Fabric      string
	Description string
	ImageURLs   []string
	PatternLink string
}

// CoverImage is the first image, shown in listings.
func (v CatalogItemView) CoverImage() string {
	if len(v.ImageURLs) == 0 {
		return ""
	}
	return v.ImageURLs[0]
}

type catalogRow struct {
	ID          uuid.UUID
	Title       string
	Genre       string
	Event       string
	Difficulty  string
	Fabric      string
	Description string
	ImageURLs   []string `gorm:"serializer:json"`
	PatternLink string
}

type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

// Handle returns models sorted by title.
func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]CatalogItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("catalog_models")
	if query.genre != nil {
		tx = tx.Where("genre = ?", string(*query.genre))
	}
	if query.event != nil {
		tx = tx.Where("event = ?", string(*query.event))
	}

	var rows []catalogRow
	if err := tx.Order("title, id").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CatalogItemView, 0, len(rows))
	for _, row := range rows {
		id, err := toKernelUUID(row.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, CatalogItemView{
			ID:          id,
			Title:       row.Title,
			Genre:       catalog.Genre(row.Genre),
			Event:       catalog.Event(row.Event),
			Difficulty:  catalog.Difficulty(row.Difficulty),
			Fabric:      row.Fabric,
			Description: row.Description,
			ImageURLs:   row.ImageURLs,
			PatternLink: row.PatternLink,
		})
	}

	return views, nil
}

package catalogrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) Add(ctx context.Context, m *catalog.Model) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Model, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ModelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("model", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes the model row only. Orders placed on it are left as they are.
func (r *GormCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&ModelDTO{}, "id = ?", id.Bytes())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("model", id.String())
	}
	return nil
}

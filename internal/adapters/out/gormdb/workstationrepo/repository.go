package workstationrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormWorkstationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkstationRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkstationRepository {
	return &GormWorkstationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWorkstationRepository) Add(ctx context.Context, ws *workstation.Workstation) error {
	if err := ws.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ws)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// the code itself is a credential and stays out of the message
			return errs.NewObjectAlreadyExistsErrorWithCause("access code", "***", err)
		}
		return err
	}

	r.tracker.TrackAggregate(ws.ID(), ws)
	return nil
}

func (r *GormWorkstationRepository) Get(ctx context.Context, id kernel.UUID) (*workstation.Workstation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkstationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workstation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWorkstationRepository) GetAll(ctx context.Context) ([]*workstation.Workstation, error) {
	var dtos []WorkstationDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*workstation.Workstation, 0, len(dtos))
	for _, dto := range dtos {
		ws, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, ws)
	}
	return result, nil
}

func (r *GormWorkstationRepository) AccessCodeExists(ctx context.Context, code workstation.AccessCode) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WorkstationDTO{}).Where("access_code = ?", code.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

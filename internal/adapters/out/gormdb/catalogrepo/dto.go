// Package catalogrepo persists catalog models with GORM.
package catalogrepo

import (
	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ModelDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Genre       string    `gorm:"not null;index"`
	Event       string    `gorm:"not null;index"`
	Difficulty  string    `gorm:"not null"`
	Fabric      string
	Description string
	ImageURLs   []string `gorm:"serializer:json"`
	PatternLink string
}

func (ModelDTO) TableName() string {
	return "catalog_models"
}

func fromDomain(m *catalog.Model) ModelDTO {
	return ModelDTO{
		ID:          m.ID().Bytes(),
		Title:       m.Title(),
		Genre:       string(m.Genre()),
		Event:       string(m.Event()),
		Difficulty:  string(m.Difficulty()),
		Fabric:      m.Fabric(),
		Description: m.Description(),
		ImageURLs:   m.ImageURLs(),
		PatternLink: m.PatternLink(),
	}
}

func toDomain(dto ModelDTO) (*catalog.Model, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewModel(id, catalog.ModelParams{
		Title:       dto.Title,
		Genre:       catalog.Genre(dto.Genre),
		Event:       catalog.Event(dto.Event),
		Difficulty:  catalog.Difficulty(dto.Difficulty),
		Fabric:      dto.Fabric,
		Description: dto.Description,
		ImageURLs:   dto.ImageURLs,
		PatternLink: dto.PatternLink,
	})
}

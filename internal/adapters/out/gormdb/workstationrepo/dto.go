// Package workstationrepo persists workstations with GORM.
package workstationrepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"

	"github.com/google/uuid"
)

type WorkstationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	AccessCode string    `gorm:"size:10;not null;uniqueIndex"`
}

func (WorkstationDTO) TableName() string {
	return "workstations"
}

func fromDomain(ws *workstation.Workstation) WorkstationDTO {
	return WorkstationDTO{
		ID:         ws.ID().Bytes(),
		Name:       ws.Name(),
		AccessCode: ws.AccessCode().String(),
	}
}

func toDomain(dto WorkstationDTO) (*workstation.Workstation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := workstation.AccessCodeFromString(dto.AccessCode)
	if err != nil {
		return nil, err
	}

	return workstation.NewWorkstation(id, dto.Name, code)
}

// Package clientrepo persists clients with GORM.
package clientrepo

import (
	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ClientDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"not null;index"`
	Phone        string          `gorm:"not null"`
	Email        string
	Measurements MeasurementsDTO `gorm:"embedded;embeddedPrefix:measurement_"`
	LastSeen     string
}

// MeasurementsDTO is stored inline in the clients table, in centimetres.
type MeasurementsDTO struct {
	Height float64
	Chest  float64
	Waist  float64
	Hips   float64
	Inseam float64
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	m := c.Measurements()
	return ClientDTO{
		ID:    c.ID().Bytes(),
		Name:  c.Name(),
		Phone: c.Phone(),
		Email: c.Email(),
		Measurements: MeasurementsDTO{
			Height: m.Height(),
			Chest:  m.Chest(),
			Waist:  m.Waist(),
			Hips:   m.Hips(),
			Inseam: m.Inseam(),
		},
		LastSeen: c.LastSeen(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	m, err := client.NewMeasurements(
		dto.Measurements.Height,
		dto.Measurements.Chest,
		dto.Measurements.Waist,
		dto.Measurements.Hips,
		dto.Measurements.Inseam,
	)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Phone, dto.Email, m, dto.LastSeen)
}

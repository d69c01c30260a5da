// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the "orders" row. Client, model and workstation ids are weak
// references: no foreign keys, since the referenced rows may disappear.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TicketID      string     `gorm:"size:16;not null;uniqueIndex"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ModelID       uuid.UUID  `gorm:"type:uuid;not null"`
	PlacedAt      time.Time  `gorm:"not null;index"`
	Status        int        `gorm:"not null;index"`
	Price         *int64
	Notes         string
	WorkstationID *uuid.UUID `gorm:"type:uuid;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var workstationID *uuid.UUID
	if id := o.Workstation(); id != nil {
		raw := id.Bytes()
		workstationID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		TicketID:      o.TicketID().String(),
		ClientID:      o.ClientID().Bytes(),
		ModelID:       o.ModelID().Bytes(),
		PlacedAt:      o.Date().UTC(),
		Status:        int(o.Status()),
		Price:         o.Price(),
		Notes:         o.Notes(),
		WorkstationID: workstationID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ticket, err := kernel.TicketIDFromString(dto.TicketID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	modelID, err := kernel.UUIDFromBytes(dto.ModelID[:])
	if err != nil {
		return nil, err
	}

	var workstationID *kernel.UUID
	if dto.WorkstationID != nil {
		wsID, wsErr := kernel.UUIDFromBytes((*dto.WorkstationID)[:])
		if wsErr != nil {
			return nil, wsErr
		}
		workstationID = &wsID
	}

	return order.RestoreOrder(
		id,
		ticket,
		clientID,
		modelID,
		dto.PlacedAt,
		order.Status(dto.Status),
		dto.Price,
		dto.Notes,
		workstationID,
	)
}

// Package notificationrepo persists the notification log with GORM.
package notificationrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Message   string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
	IsRead    bool       `gorm:"not null;default:false"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		Message:   n.Message(),
		CreatedAt: n.Date().UTC(),
		IsRead:    n.IsRead(),
		OrderID:   orderID,
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oid, oidErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oidErr != nil {
			return nil, oidErr
		}
		orderID = &oid
	}

	return notification.RestoreNotification(id, dto.Message, dto.CreatedAt, dto.IsRead, orderID)
}

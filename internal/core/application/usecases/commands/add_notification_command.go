package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/guard"
)

var ErrAddNotificationCommandIsNotConstructed = errors.New(
	"AddNotificationCommand must be created via NewAddNotificationCommand constructor",
)

// AddNotificationCommand appends a free-form entry to the notification log,
// optionally about an order.
type AddNotificationCommand struct {
	message string
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddNotificationCommand(message string, orderID *kernel.UUID) (AddNotificationCommand, error) {
	var errList []error
	if strings.TrimSpace(message) == "" {
		errList = append(errList, notification.ErrMessageIsRequired)
	}
	if orderID != nil {
		errList = append(errList, orderID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return AddNotificationCommand{}, err
	}

	return AddNotificationCommand{
		message: message,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddNotificationCommand) Validate() error {
	return c.guard.Validate(ErrAddNotificationCommandIsNotConstructed)
}

func (c AddNotificationCommand) Message() string       { return c.message }
func (c AddNotificationCommand) OrderID() *kernel.UUID { return c.orderID }

// Package notification holds the manager's notification log entries.
package notification

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrMessageIsRequired            = errs.NewValueIsRequiredError("message")
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")
)

// Notification is an entry of the append-only notification log. Only the read
// flag changes after creation.
type Notification struct {
	id      kernel.UUID
	message string
	date    time.Time
	read    bool
	orderID *kernel.UUID
	guard   guard.ConstructorGuard
}

// NewNotification creates an unread entry. orderID is optional.
func NewNotification(id kernel.UUID, message string, date time.Time, orderID *kernel.UUID) (*Notification, error) {
	return RestoreNotification(id, message, date, false, orderID)
}

// RestoreNotification rebuilds an entry from storage.
func RestoreNotification(id kernel.UUID, message string, date time.Time, read bool, orderID *kernel.UUID) (*Notification, error) {
	var errList []error
	errList = append(errList, id.Validate())
	if strings.TrimSpace(message) == "" {
		errList = append(errList, ErrMessageIsRequired)
	}
	if date.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("date"))
	}
	if orderID != nil {
		errList = append(errList, orderID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	n := &Notification{
		id:      id,
		message: message,
		date:    date.UTC(),
		read:    read,
		guard:   guard.NewConstructorGuard(),
	}
	if orderID != nil {
		ref := *orderID
		n.orderID = &ref
	}
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Date() time.Time {
	return n.date
}

func (n *Notification) IsRead() bool {
	return n.read
}

// OrderID returns the order the entry is about, nil for free-form messages.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// MarkRead flags the entry as read. It reports whether the flag changed.
func (n *Notification) MarkRead() bool {
	if n.read {
		return false
	}
	n.read = true
	return true
}

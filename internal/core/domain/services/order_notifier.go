package services

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
)

const (
	statusChangedFormat     = `La commande %s (%s) est passée au statut "%s".`
	workstationAssignFormat = "Commande %s assignée à %s."
	clientOrderPlacedFormat = `Nouvelle commande client: %s pour le modèle "%s".`
)

// OrderNotifier builds the notifications that order events produce. It does
// not store them: callers add the result to the log within their unit of work.
//
// Example usage:
//
//	notifier := services.NewOrderNotifier()
//	n, err := notifier.StatusChanged(o, model.Title())
//	if err != nil {
//	    return err
//	}
//	if n != nil {
//	    // persist n
//	}
type OrderNotifier struct {
	now func() time.Time
}

func NewOrderNotifier() OrderNotifier {
	return OrderNotifier{now: time.Now}
}

// NewOrderNotifierWithClock pins the timestamp source, for tests and replays.
func NewOrderNotifierWithClock(now func() time.Time) OrderNotifier {
	return OrderNotifier{now: now}
}

// StatusChanged announces the order's current status.
//
// Parameters:
//   - o: The order, already moved to its new status
//   - modelTitle: Title of the ordered model; empty when the model was removed
//     from the catalog, in which case the message shows "()"
//
// Returns:
//   - *notification.Notification: an unread notification linked to o, or nil
//     when the status is not one managers are told about (only Finishing and
//     ReadyToDeliver are)
//   - error: a validation error if o was not properly constructed
//
// Example:
//
//	n, err := notifier.StatusChanged(o, "Robe en Wax Évasée")
//	if err != nil {
//	    return err
//	}
//	if n != nil {
//	    fmt.Println(n.Message())
//	    // La commande CMD-G7H8I9 (Robe en Wax Évasée) est passée au statut "Prêt à livrer".
//	}
func (n OrderNotifier) StatusChanged(o *order.Order, modelTitle string) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.Status().IsNotifiable() {
		return nil, nil
	}
	msg := fmt.Sprintf(statusChangedFormat, o.TicketID(), modelTitle, o.Status())
	return n.build(msg, o.ID())
}

// WorkstationAssigned announces that o now sits at ws. Every assignment is
// announced, including reassignment to the same workstation.
func (n OrderNotifier) WorkstationAssigned(o *order.Order, ws *workstation.Workstation) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	msg := fmt.Sprintf(workstationAssignFormat, o.TicketID(), ws.Name())
	return n.build(msg, o.ID())
}

// ClientOrderPlaced announces an order a client placed from the catalog.
func (n OrderNotifier) ClientOrderPlaced(o *order.Order, modelTitle string) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	msg := fmt.Sprintf(clientOrderPlacedFormat, o.TicketID(), modelTitle)
	return n.build(msg, o.ID())
}

func (n OrderNotifier) build(msg string, orderID kernel.UUID) (*notification.Notification, error) {
	now := n.now
	if now == nil {
		now = time.Now
	}
	return notification.NewNotification(kernel.NewUUID(), msg, now(), &orderID)
}

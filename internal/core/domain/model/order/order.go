package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a client's request for one garment of the catalog. It is the
// aggregate root of the order registry.
//
// Order follows these invariants:
//   - id and ticket id are valid and never change
//   - client and model references are valid identifiers (they are weak
//     references: the referenced entities may disappear)
//   - date is set and never changes
//   - status is one of the five pipeline stages
//   - price, when set, is not negative
type Order struct {
	id            kernel.UUID
	ticketID      kernel.TicketID
	clientID      kernel.UUID
	modelID       kernel.UUID
	date          time.Time
	status        Status
	price         *int64
	notes         string
	workstationID *kernel.UUID
	isConstructed bool
}

// NewOrder creates an unassigned order.
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewTicketID(), clientID, modelID,
//	    time.Now(), order.PendingValidation, nil, "")
func NewOrder(
	id kernel.UUID,
	ticketID kernel.TicketID,
	clientID kernel.UUID,
	modelID kernel.UUID,
	date time.Time,
	status Status,
	price *int64,
	notes string,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setTicketID(ticketID),
		o.setClientID(clientID),
		o.setModelID(modelID),
		o.setDate(date),
		o.setStatus(status),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order from storage, including its assignment.
func RestoreOrder(
	id kernel.UUID,
	ticketID kernel.TicketID,
	clientID kernel.UUID,
	modelID kernel.UUID,
	date time.Time,
	status Status,
	price *int64,
	notes string,
	workstationID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, ticketID, clientID, modelID, date, status, price, notes)
	if err != nil {
		return nil, err
	}
	if workstationID != nil {
		if err = o.AssignWorkstation(*workstationID); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TicketID() kernel.TicketID {
	return o.ticketID
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) ModelID() kernel.UUID {
	return o.modelID
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Status() Status {
	return o.status
}

// Price returns a copy of the price, nil when not yet quoted.
func (o *Order) Price() *int64 {
	if o.price == nil {
		return nil
	}
	p := *o.price
	return &p
}

func (o *Order) Notes() string {
	return o.notes
}

// Workstation returns the assigned workstation, nil when unassigned.
func (o *Order) Workstation() *kernel.UUID {
	return o.workstationID
}

// IsAssignedTo reports whether the order sits at the given workstation.
func (o *Order) IsAssignedTo(workstationID kernel.UUID) bool {
	return o.workstationID != nil && o.workstationID.IsEqual(workstationID)
}

// ChangeStatus moves the order to status under the given policy.
// Setting the current status again is accepted under both policies and leaves
// the order untouched.
//
// Parameters:
//   - status: The target stage, one of Statuses()
//   - policy: Permissive accepts any valid stage, Strict only the next one
//
// Returns:
//   - bool: true if the status actually changed
//   - error: errs.ErrValueIsInvalid for an unknown stage, ErrTransitionIsNotAllowed
//     for a jump the policy refuses; the order is not modified in either case
//
// The bool is informational: status notifications are decided from the
// resulting status, so re-sending a notifiable status announces it again.
//
// Example:
//
//	// o is En finition
//	changed, err := o.ChangeStatus(order.ReadyToDeliver, order.Strict)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(changed, o.Status()) // true Prêt à livrer
func (o *Order) ChangeStatus(status Status, policy TransitionPolicy) (bool, error) {
	if err := policy.Validate(o.status, status); err != nil {
		return false, err
	}
	changed := o.status != status
	o.status = status
	return changed, nil
}

// AssignWorkstation routes the order to a workstation, replacing any previous
// assignment.
func (o *Order) AssignWorkstation(workstationID kernel.UUID) error {
	if err := workstationID.Validate(); err != nil {
		return err
	}
	o.workstationID = &workstationID
	return nil
}

// UnassignWorkstation takes the order off its workstation.
func (o *Order) UnassignWorkstation() {
	o.workstationID = nil
}

// SetPrice quotes the order; nil clears the quote.
func (o *Order) SetPrice(price *int64) error {
	return o.setPrice(price)
}

func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTicketID(ticketID kernel.TicketID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	o.ticketID = ticketID
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setModelID(modelID kernel.UUID) error {
	if err := modelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("model id", err)
	}
	o.modelID = modelID
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.date = date.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPrice(price *int64) error {
	if price == nil {
		o.price = nil
		return nil
	}
	if *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", *price))
	}
	p := *price
	o.price = &p
	return nil
}

package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrListWorkstationOrdersQueryIsNotConstructed = errors.New(
	"ListWorkstationOrdersQuery must be created via NewListWorkstationOrdersQuery constructor",
)

// ListWorkstationOrdersQuery is the work list of one workstation.
type ListWorkstationOrdersQuery struct {
	workstationID kernel.UUID
	guard         guard.ConstructorGuard
}

func NewListWorkstationOrdersQuery(workstationID kernel.UUID) (ListWorkstationOrdersQuery, error) {
	if err := workstationID.Validate(); err != nil {
		return ListWorkstationOrdersQuery{}, err
	}
	return ListWorkstationOrdersQuery{
		workstationID: workstationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkstationOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkstationOrdersQueryIsNotConstructed)
}

// WorkstationOrderView carries what a tailor needs at the bench: who the
// garment is for, their measurements and the pattern.
type WorkstationOrderView struct {
	ID           kernel.UUID
	TicketID     string
	ClientName   string
	ClientPhone  string
	Measurements MeasurementsView
	ModelTitle   string
	PatternLink  string
	Status       order.Status
	Date         time.Time
	Notes        string
}

// MeasurementsView is in centimetres; zeros mean "not measured yet".
type MeasurementsView struct {
	Height float64
	Chest  float64
	Waist  float64
	Hips   float64
	Inseam float64
}

package queries

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

type workstationFilterKind int

const (
	filterAllWorkstations workstationFilterKind = iota
	filterUnassigned
	filterWorkstation
)

// WorkstationFilter narrows the order list by assignment. The zero value
// matches every order.
type WorkstationFilter struct {
	kind workstationFilterKind
	id   kernel.UUID
}

func AllWorkstations() WorkstationFilter {
	return WorkstationFilter{kind: filterAllWorkstations}
}

func UnassignedOnly() WorkstationFilter {
	return WorkstationFilter{kind: filterUnassigned}
}

func AssignedTo(id kernel.UUID) WorkstationFilter {
	return WorkstationFilter{kind: filterWorkstation, id: id}
}

// WorkstationFilterFromString parses the management filter value: "" or
// "Tous" for all, "unassigned" for orders without a workstation, otherwise a
// workstation id.
func WorkstationFilterFromString(s string) (WorkstationFilter, error) {
	switch strings.TrimSpace(s) {
	case "", "Tous":
		return AllWorkstations(), nil
	case "unassigned":
		return UnassignedOnly(), nil
	}

	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return WorkstationFilter{}, errs.NewValueIsInvalidErrorWithCause("workstation filter", err)
	}
	return AssignedTo(id), nil
}

// ListOrdersQuery is the management order list. Filters combine with AND.
type ListOrdersQuery struct {
	status      *order.Status
	workstation WorkstationFilter
	search      string
	guard       guard.ConstructorGuard
}

// NewListOrdersQuery accepts a nil status for "all statuses". search is
// matched case-insensitively against client name, model title and ticket id.
func NewListOrdersQuery(status *order.Status, workstation WorkstationFilter, search string) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	if workstation.kind == filterWorkstation {
		if err := workstation.id.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status:      status,
		workstation: workstation,
		search:      strings.ToLower(strings.TrimSpace(search)),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderView is one row of the management list. Client, model and
// workstation names are empty when the referenced record is gone.
type OrderView struct {
	ID              kernel.UUID
	TicketID        string
	ClientID        kernel.UUID
	ClientName      string
	ModelID         kernel.UUID
	ModelTitle      string
	WorkstationID   *kernel.UUID
	WorkstationName string
	Status          order.Status
	Date            time.Time
	Price           *int64
	Notes           string
}

func (v OrderView) matches(search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{v.ClientName, v.ModelTitle, v.TicketID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

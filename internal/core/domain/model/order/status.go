package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status is the production stage of an order. Values are ordered along the
// pipeline:
//
//	PendingValidation ──> InSewing ──> Finishing ──> ReadyToDeliver ──> Delivered
//
// The pipeline order is what Strict transitions enforce and what dashboards
// display; the shop itself lets a manager pick any stage (see TransitionPolicy).
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// PendingValidation is the stage of a freshly placed order, before the shop accepts it.
	PendingValidation

	// InSewing means the garment is being sewn at a workstation.
	InSewing

	// Finishing covers hems, buttons, embroidery touch-ups.
	Finishing

	// ReadyToDeliver means the client can collect the garment.
	ReadyToDeliver

	// Delivered is the last stage. Workstation dashboards hide delivered orders.
	Delivered
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		PendingValidation: "En attente de validation",
		InSewing:          "En cours de couture",
		Finishing:         "En finition",
		ReadyToDeliver:    "Prêt à livrer",
		Delivered:         "Livré",
	}
}

// Statuses returns the valid stages in pipeline order.
func Statuses() []Status {
	return []Status{PendingValidation, InSewing, Finishing, ReadyToDeliver, Delivered}
}

// StatusFromString parses the shop label of a stage, e.g. "Prêt à livrer".
func StatusFromString(label string) (Status, error) {
	for _, s := range Statuses() {
		if getStatusLabels()[s] == label {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", label))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < PendingValidation || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the shop label. Safe on invalid values.
func (s Status) String() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// Next returns the following pipeline stage. Delivered has no next stage.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s == Delivered {
		return Unknown, false
	}
	return s + 1, true
}

// IsNotifiable reports whether reaching this stage is announced to managers.
func (s Status) IsNotifiable() bool {
	return s == Finishing || s == ReadyToDeliver
}

// IsOpen reports whether the order still needs work, i.e. is not Delivered.
func (s Status) IsOpen() bool {
	return s.Validate() == nil && s != Delivered
}

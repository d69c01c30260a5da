package order

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

// TransitionPolicy decides which status changes an order accepts.
type TransitionPolicy int

const (
	// Permissive accepts any valid status from any status, including moving
	// backward or skipping stages. This is how the shop works day to day.
	Permissive TransitionPolicy = iota

	// Strict accepts only staying on the current stage or advancing to the next one.
	Strict
)

// ErrTransitionIsNotAllowed is the sentinel for changes rejected by Strict.
var ErrTransitionIsNotAllowed = errs.NewValueIsInvalidError("status transition is not allowed")

// TransitionPolicyFromString maps configuration values ("permissive", "strict").
func TransitionPolicyFromString(s string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, errs.NewValueIsInvalidErrorWithCause(
			"transition policy",
			fmt.Errorf("%q is neither permissive nor strict", s),
		)
	}
}

func (p TransitionPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "permissive"
}

// Validate checks a move from one stage to another under the policy.
//
// Returns:
//   - nil if to is a valid stage and the policy allows the move
//   - errs.ErrValueIsInvalid if to is not a valid stage
//   - ErrTransitionIsNotAllowed if the policy is Strict and to is neither
//     from itself nor the stage right after it
//
// Permissive allows any valid target, backwards moves included. Strict follows
// the pipeline one stage at a time; Delivered has no next stage, so a strict
// order stays delivered.
//
// Example:
//
//	err := order.Strict.Validate(order.InSewing, order.Delivered)
//	fmt.Println(errors.Is(err, order.ErrTransitionIsNotAllowed)) // true
func (p TransitionPolicy) Validate(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if p != Strict || from == to {
		return nil
	}
	if next, ok := from.Next(); ok && next == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, from, to)
}

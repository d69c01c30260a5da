package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

const (
	ticketPrefix = "CMD-"
	ticketLength = 6
	// No 0/O or 1/I: tickets are read aloud over the phone.
	ticketAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// ErrTicketIDIsNotConstructed is returned when validating a zero-value TicketID.
var ErrTicketIDIsNotConstructed = errs.NewValueIsRequiredError("TicketID must be created via NewTicketID or TicketIDFromString")

// TicketID is the human-facing order reference, distinct from the order's UUID.
// Its format is "CMD-" followed by uppercase letters and digits.
type TicketID struct {
	value string
}

// NewTicketID draws a random ticket reference. Random draws can collide, so the
// registry checks the candidate against issued tickets before using it.
func NewTicketID() TicketID {
	buf := make([]byte, ticketLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("kernel: crypto/rand failed: %v", err))
	}
	for i, b := range buf {
		buf[i] = ticketAlphabet[int(b)%len(ticketAlphabet)]
	}
	return TicketID{value: ticketPrefix + string(buf)}
}

// TicketIDFromString restores a ticket reference. Seeded tickets such as
// "CMD-A1B2C3" predate the restricted alphabet, so any uppercase alphanumeric
// suffix is accepted.
func TicketIDFromString(s string) (TicketID, error) {
	suffix, ok := strings.CutPrefix(s, ticketPrefix)
	if !ok || suffix == "" {
		return TicketID{}, errs.NewValueIsInvalidErrorWithCause(
			"ticket id",
			fmt.Errorf("%q does not start with %s", s, ticketPrefix),
		)
	}
	for _, r := range suffix {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return TicketID{}, errs.NewValueIsInvalidErrorWithCause(
				"ticket id",
				fmt.Errorf("%q contains %q", s, r),
			)
		}
	}
	return TicketID{value: s}, nil
}

func (t TicketID) String() string {
	return t.value
}

func (t TicketID) IsEqual(other TicketID) bool {
	return t.value == other.value
}

func (t TicketID) Validate() error {
	if t.value == "" {
		return ErrTicketIDIsNotConstructed
	}
	return nil
}

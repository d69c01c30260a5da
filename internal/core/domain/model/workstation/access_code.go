package workstation

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"atelier/internal/pkg/errs"
)

const accessCodePrefix = "POSTE-"

var accessCodePattern = regexp.MustCompile(`^POSTE-[0-9A-F]{4}$`)

// ErrAccessCodeIsNotConstructed is returned when validating a zero-value AccessCode.
var ErrAccessCodeIsNotConstructed = errs.NewValueIsRequiredError("AccessCode must be created via NewAccessCode or AccessCodeFromString")

// AccessCode is the bearer credential of a workstation, e.g. "POSTE-A4B8".
type AccessCode struct {
	value string
}

// NewAccessCode draws a random code. Callers must check it against the codes
// already issued.
func NewAccessCode() AccessCode {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("workstation: crypto/rand failed: %v", err))
	}
	return AccessCode{value: accessCodePrefix + strings.ToUpper(hex.EncodeToString(buf))}
}

// AccessCodeFromString parses a stored code. Matching is exact, so lowercase
// input is rejected rather than normalized.
func AccessCodeFromString(s string) (AccessCode, error) {
	if !accessCodePattern.MatchString(s) {
		return AccessCode{}, errs.NewValueIsInvalidErrorWithCause(
			"access code",
			fmt.Errorf("%q does not match %s", s, accessCodePattern),
		)
	}
	return AccessCode{value: s}, nil
}

func (c AccessCode) String() string {
	return c.value
}

// Matches compares a submitted code in constant time.
func (c AccessCode) Matches(submitted string) bool {
	if c.value == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.value), []byte(submitted)) == 1
}

func (c AccessCode) IsEqual(other AccessCode) bool {
	return c.value == other.value
}

func (c AccessCode) Validate() error {
	if c.value == "" {
		return ErrAccessCodeIsNotConstructed
	}
	return nil
}

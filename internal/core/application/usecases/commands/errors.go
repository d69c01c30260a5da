package commands

import (
	"errors"
	"fmt"

	"atelier/internal/pkg/errs"
)

// Lookup failures. They wrap the repository's errs.ErrObjectNotFound, so
// callers can match either the specific sentinel or the generic one.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrWorkstationNotFound = errors.New("workstation not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrModelNotFound       = errors.New("model not found")
)

// notFound tags a repository lookup error with the command-level sentinel.
func notFound(sentinel, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

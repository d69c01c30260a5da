package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand flags a set of entries as read. Ids missing
// from the log are ignored.
type MarkNotificationsReadCommand struct {
	ids []kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationsReadCommand(ids []kernel.UUID) (MarkNotificationsReadCommand, error) {
	errList := make([]error, 0, len(ids))
	for _, id := range ids {
		errList = append(errList, id.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return MarkNotificationsReadCommand{
		ids:   append([]kernel.UUID(nil), ids...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

func (c MarkNotificationsReadCommand) IDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.ids...)
}

package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand adds a client to the registry. The email is optional.
type RegisterClientCommand struct {
	name         string
	phone        string
	email        string
	measurements client.Measurements

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand takes already validated measurements, the zero
// value when none were taken yet.
func NewRegisterClientCommand(name, phone, email string, m client.Measurements) (RegisterClientCommand, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)

	var errList []error
	if name == "" {
		errList = append(errList, client.ErrNameIsRequired)
	}
	if phone == "" {
		errList = append(errList, client.ErrPhoneIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterClientCommand{}, err
	}

	return RegisterClientCommand{
		name:         name,
		phone:        phone,
		email:        strings.TrimSpace(email),
		measurements: m,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) Name() string {
	return c.name
}

func (c RegisterClientCommand) Phone() string {
	return c.phone
}

func (c RegisterClientCommand) Email() string {
	return c.email
}

func (c RegisterClientCommand) Measurements() client.Measurements {
	return c.measurements
}

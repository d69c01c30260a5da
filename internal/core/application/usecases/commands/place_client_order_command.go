package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrPlaceClientOrderCommandIsNotConstructed = errors.New(
	"PlaceClientOrderCommand must be created via NewPlaceClientOrderCommand constructor",
)

// PlaceClientOrderCommand is an order a visitor places from the catalog. The
// visitor is registered as a new client.
type PlaceClientOrderCommand struct {
	modelID kernel.UUID
	name    string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

func NewPlaceClientOrderCommand(modelID kernel.UUID, name, phone, email string) (PlaceClientOrderCommand, error) {
	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)

	var nameErr, phoneErr error
	if name == "" {
		nameErr = client.ErrNameIsRequired
	}
	if phone == "" {
		phoneErr = client.ErrPhoneIsRequired
	}
	if err := errors.Join(modelID.Validate(), nameErr, phoneErr); err != nil {
		return PlaceClientOrderCommand{}, err
	}

	return PlaceClientOrderCommand{
		modelID: modelID,
		name:    name,
		phone:   phone,
		email:   email,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceClientOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceClientOrderCommandIsNotConstructed)
}

func (c PlaceClientOrderCommand) ModelID() kernel.UUID { return c.modelID }
func (c PlaceClientOrderCommand) Name() string         { return c.name }
func (c PlaceClientOrderCommand) Phone() string        { return c.phone }

// Email is empty when the visitor gave none.
func (c PlaceClientOrderCommand) Email() string { return c.email }

package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPriceIsNegative = errs.NewValueIsInvalidError("price must not be negative")
)

// CreateOrderCommand registers an order from the management view. The id and
// ticket are generated by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, modelID, time.Now(), order.PendingValidation, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	modelID  kernel.UUID
	date     time.Time
	status   order.Status
	price    *int64
	notes    string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	clientID, modelID kernel.UUID,
	date time.Time,
	status order.Status,
	price *int64,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setModelID(modelID),
		cmd.setDate(date),
		cmd.setStatus(status),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() kernel.UUID { return c.clientID }
func (c CreateOrderCommand) ModelID() kernel.UUID  { return c.modelID }
func (c CreateOrderCommand) Date() time.Time       { return c.date }
func (c CreateOrderCommand) Status() order.Status  { return c.status }
func (c CreateOrderCommand) Price() *int64         { return c.price }
func (c CreateOrderCommand) Notes() string         { return c.notes }

func (c *CreateOrderCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.clientID = id
	return nil
}

func (c *CreateOrderCommand) setModelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.modelID = id
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setPrice(price *int64) error {
	if price != nil && *price < 0 {
		return ErrPriceIsNegative
	}
	c.price = price
	return nil
}

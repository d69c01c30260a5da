package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand replaces the quoted price and the notes of an
// order. A nil price clears the quote.
type UpdateOrderDetailsCommand struct {
	orderID kernel.UUID
	price   *int64
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID kernel.UUID, price *int64, notes string) (UpdateOrderDetailsCommand, error) {
	var priceErr error
	if price != nil && *price < 0 {
		priceErr = ErrPriceIsNegative
	}
	if err := errors.Join(orderID.Validate(), priceErr); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}
	return UpdateOrderDetailsCommand{
		orderID: orderID,
		price:   price,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderDetailsCommand) Price() *int64        { return c.price }
func (c UpdateOrderDetailsCommand) Notes() string        { return c.notes }

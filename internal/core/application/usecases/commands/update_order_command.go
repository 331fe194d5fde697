package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand edits the commercial data of an order that has not left yet.
// Nil fields keep their stored value; at least one must be set.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	revision order.Revision

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID kernel.UUID,
	value *decimal.Decimal,
	paymentMethod *order.PaymentMethod,
	boxCount *int,
	hasBundle *bool,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		revision: order.Revision{HasBundle: hasBundle},
		guard:    guard.NewConstructorGuard(),
	}

	if value == nil && paymentMethod == nil && boxCount == nil && hasBundle == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("changes")
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setValue(value),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setBoxCount(boxCount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Revision() order.Revision {
	return c.revision
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setValue(value *decimal.Decimal) error {
	if value == nil {
		return nil
	}
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", errors.New(value.String()+" is not greater than 0"))
	}

	v := *value
	c.revision.Value = &v
	return nil
}

func (c *UpdateOrderCommand) setPaymentMethod(m *order.PaymentMethod) error {
	if m == nil {
		return nil
	}
	if err := m.Validate(); err != nil {
		return err
	}

	pm := *m
	c.revision.PaymentMethod = &pm
	return nil
}

func (c *UpdateOrderCommand) setBoxCount(n *int) error {
	if n == nil {
		return nil
	}
	if *n < 0 || *n > order.MaxBoxCount {
		return errs.NewValueIsOutOfRangeError("boxCount", *n, 0, order.MaxBoxCount)
	}

	boxes := *n
	c.revision.BoxCount = &boxes
	return nil
}

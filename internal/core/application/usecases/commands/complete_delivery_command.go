package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks a dispatched order as handed over. The collected payment is
// recorded only when both a non-zero amount and the method are given.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payment *order.Payment

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(
	orderID kernel.UUID,
	paidAmount *decimal.Decimal,
	paidMethod string,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPayment(paidAmount, paidMethod),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payment is nil when nothing was collected at the door.
func (c CompleteDeliveryCommand) Payment() *order.Payment {
	return c.payment
}

func (c *CompleteDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CompleteDeliveryCommand) setPayment(amount *decimal.Decimal, method string) error {
	if amount == nil || amount.IsZero() || method == "" {
		return nil
	}

	p, err := order.NewPayment(*amount, method)
	if err != nil {
		return err
	}

	c.payment = &p
	return nil
}

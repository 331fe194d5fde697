package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a request to register a prepared order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    decimal.RequireFromString("89.90"), order.PaidOnDelivery, 3, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	value         decimal.Decimal
	paymentMethod order.PaymentMethod
	boxCount      int
	hasBundle     bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order data and collects every problem into one error.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	value decimal.Decimal,
	paymentMethod order.PaymentMethod,
	boxCount int,
	hasBundle bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		hasBundle: hasBundle,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setValue(value),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setBoxCount(boxCount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Value() decimal.Decimal {
	return c.value
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) BoxCount() int {
	return c.boxCount
}

func (c CreateOrderCommand) HasBundle() bool {
	return c.hasBundle
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", errors.New(value.String()+" is not greater than 0"))
	}

	c.value = value
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}

	c.paymentMethod = m
	return nil
}

func (c *CreateOrderCommand) setBoxCount(n int) error {
	if n < 0 || n > order.MaxBoxCount {
		return errs.NewValueIsOutOfRangeError("boxCount", n, 0, order.MaxBoxCount)
	}

	c.boxCount = n
	return nil
}

package commands

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand records that a cashier reconciled a delivered order.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	cashier string

	guard guard.ConstructorGuard
}

func NewSettleOrderCommand(orderID kernel.UUID, cashier string) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCashier(cashier),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

func (c SettleOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SettleOrderCommand) Cashier() string {
	return c.cashier
}

func (c *SettleOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SettleOrderCommand) setCashier(cashier string) error {
	cashier = strings.TrimSpace(cashier)
	if cashier == "" {
		return errs.NewValueIsRequiredError("cashierID")
	}

	c.cashier = cashier
	return nil
}

package commands

import (
	"errors"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	DefaultPendingBatchSize = 50
	MaxPendingBatchSize     = 500
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

// AssignPendingOrdersCommand asks for another assignment attempt on prepared orders that
// were left without a driver, oldest first.
type AssignPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewAssignPendingOrdersCommand takes the number of orders to try; 0 means DefaultPendingBatchSize.
func NewAssignPendingOrdersCommand(batchSize int) (AssignPendingOrdersCommand, error) {
	if batchSize == 0 {
		batchSize = DefaultPendingBatchSize
	}
	if batchSize < 1 || batchSize > MaxPendingBatchSize {
		return AssignPendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1,
			MaxPendingBatchSize)
	}

	return AssignPendingOrdersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrdersCommandIsNotConstructed)
}

func (c AssignPendingOrdersCommand) BatchSize() int {
	return c.batchSize
}

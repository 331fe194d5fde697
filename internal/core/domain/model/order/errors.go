package order

import "fleet/internal/pkg/errs"

var (
	ErrNotPrepared      = errs.NewBusinessRuleError("order-not-prepared", "order is not in prepared status")
	ErrNoDriverAssigned = errs.NewBusinessRuleError("order-no-driver", "order has no driver assigned")
	ErrNotDispatched    = errs.NewBusinessRuleError("order-not-dispatched", "order is not in dispatched status")
	ErrAlreadyDelivered = errs.NewBusinessRuleError("order-already-delivered", "order is already delivered")
	ErrAlreadyCancelled = errs.NewBusinessRuleError("order-already-cancelled", "order is already cancelled")
	ErrAlreadyAssigned  = errs.NewBusinessRuleError("order-already-assigned", "order already has a driver")
	ErrNotDelivered     = errs.NewBusinessRuleError("order-not-delivered", "order is not delivered")
	ErrAlreadySettled   = errs.NewBusinessRuleError("order-already-settled", "order is already settled")
)

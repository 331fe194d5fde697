package order

import (
	"errors"
	"time"

	"fleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Revision lists the fields of a prepared order that may be edited. Nil fields keep their value.
type Revision struct {
	Value         *decimal.Decimal
	PaymentMethod *PaymentMethod
	BoxCount      *int
	HasBundle     *bool
}

func (r Revision) IsEmpty() bool {
	return r.Value == nil && r.PaymentMethod == nil && r.BoxCount == nil && r.HasBundle == nil
}

// BoxDelta is how many boxes the revision adds to an order currently holding current boxes.
func (r Revision) BoxDelta(current int) int {
	if r.BoxCount == nil {
		return 0
	}
	return *r.BoxCount - current
}

// Revise edits a prepared order. Either every field is applied or none is.
// Keeping an assigned driver's reservation in step with a new box count is the caller's job.
func (o *Order) Revise(r Revision, at time.Time) error {
	if r.IsEmpty() {
		return errs.NewValueIsRequiredError("revision")
	}
	if o.status != Prepared {
		return ErrNotPrepared
	}

	next := *o
	var errList []error
	if r.Value != nil {
		errList = append(errList, next.setValue(*r.Value))
	}
	if r.PaymentMethod != nil {
		errList = append(errList, next.setPaymentMethod(*r.PaymentMethod))
	}
	if r.BoxCount != nil {
		errList = append(errList, next.setBoxCount(*r.BoxCount))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	if r.HasBundle != nil {
		next.hasBundle = *r.HasBundle
	}

	*o = next
	o.raise(EventRevised, at)
	return nil
}

package order

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status is the position of an order in its lifecycle.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Prepared
	Dispatched
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no wire representation
	return map[Status]string{
		Prepared:   "prepared",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire/storage representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks that a driver may still be reserved for the order.
func (s Status) ValidateAssign() error {
	if s != Prepared {
		return ErrNotPrepared
	}
	return nil
}

// Dispatch moves prepared to dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Prepared {
		return Unknown, ErrNotPrepared
	}
	return Dispatched, nil
}

// Deliver moves dispatched to delivered.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return Unknown, ErrNotDispatched
	}
	return Delivered, nil
}

// Cancel moves any non-terminal status to cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Delivered:
		return Unknown, ErrAlreadyDelivered
	case Cancelled:
		return Unknown, ErrAlreadyCancelled
	case Prepared, Dispatched:
		return Cancelled, nil
	default:
		return Unknown, s.Validate()
	}
}

// ValidateCanHaveDriver checks the status/driver reference invariant. Prepared and cancelled
// orders may or may not reference a driver; dispatched and delivered ones must.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if !hasDriver && (s == Dispatched || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must reference a driver", s),
		)
	}
	return nil
}

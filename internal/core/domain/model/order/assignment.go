package order

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// AssignmentReason records why the engine picked the driver.
type AssignmentReason string

const (
	ReasonSingleCandidate        AssignmentReason = "single-candidate"
	ReasonTieBreakLoadThenRotate AssignmentReason = "tie-break-load-then-rotation"
)

func (r AssignmentReason) Validate() error {
	switch r {
	case ReasonSingleCandidate, ReasonTieBreakLoadThenRotate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("assignmentReason", fmt.Errorf("%q is not a valid reason", string(r)))
	}
}

func (r AssignmentReason) String() string {
	return string(r)
}

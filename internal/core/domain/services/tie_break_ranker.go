package services

import (
	"cmp"
	"slices"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/order"
)

// TieBreakRanker orders eligible drivers so the least loaded one comes first. Equal loads go to
// whoever waited longest since their last assignment; a driver never assigned before goes first.
// The driver ID breaks any remaining tie, so the ranking is fully deterministic.
type TieBreakRanker struct{}

func NewTieBreakRanker() TieBreakRanker {
	return TieBreakRanker{}
}

// Rank returns a sorted copy of candidates and the reason to record for the winner.
func (TieBreakRanker) Rank(candidates []*driver.Driver) ([]*driver.Driver, order.AssignmentReason) {
	switch len(candidates) {
	case 0:
		return nil, ""
	case 1:
		return []*driver.Driver{candidates[0]}, order.ReasonSingleCandidate
	}

	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, compareDrivers)
	return ranked, order.ReasonTieBreakLoadThenRotate
}

func compareDrivers(a, b *driver.Driver) int {
	if c := cmp.Compare(a.CurrentLoadBoxes(), b.CurrentLoadBoxes()); c != 0 {
		return c
	}

	aAt, bAt := a.LastAssignmentAt(), b.LastAssignmentAt()
	switch {
	case aAt == nil && bAt != nil:
		return -1
	case aAt != nil && bAt == nil:
		return 1
	case aAt != nil && bAt != nil:
		if c := aAt.Compare(*bAt); c != 0 {
			return c
		}
	}

	switch {
	case a.ID().Less(b.ID()):
		return -1
	case b.ID().Less(a.ID()):
		return 1
	default:
		return 0
	}
}

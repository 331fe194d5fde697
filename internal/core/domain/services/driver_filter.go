package services

import (
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverFilter keeps the drivers that can take an order right now.
type DriverFilter struct{}

func NewDriverFilter() DriverFilter {
	return DriverFilter{}
}

// IsEligible reports whether d is available, covers the neighborhood and has room for boxLoad.
func (DriverFilter) IsEligible(d *driver.Driver, n kernel.Neighborhood, boxLoad int) bool {
	return d != nil && d.IsAvailable() && d.Covers(n) && d.CanCarry(boxLoad)
}

// Eligible returns the eligible subset of candidates in their original order.
func (f DriverFilter) Eligible(n kernel.Neighborhood, boxLoad int, candidates []*driver.Driver) []*driver.Driver {
	eligible := make([]*driver.Driver, 0, len(candidates))
	for _, d := range candidates {
		if f.IsEligible(d, n, boxLoad) {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

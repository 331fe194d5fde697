// Package order contains the Order aggregate: a customer's box delivery that is matched to a driver
// and then moves through its lifecycle.
//
//	prepared ──> dispatched ──> delivered
//	    │             │
//	    └─────────────┴──> cancelled
//
// A prepared order may carry a driver reservation made by the assignment engine.
// Dispatching requires that reservation. Delivered and cancelled are terminal.
// Guard violations are errs.BusinessRuleError values so the caller can tell a refused
// transition from a lost race (errs.ConflictError).
package order

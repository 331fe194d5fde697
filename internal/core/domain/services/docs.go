// Package services holds domain logic that spans the order and driver aggregates:
//   - DriverFilter and TieBreakRanker pick a driver for an order
//   - OrderDispatcher turns that pick into a reservation on both aggregates
//   - OrderLifecycle applies dispatch, delivery and cancellation to an order and its driver together
//
// None of these touch storage. The application layer loads the aggregates under a row lock,
// calls a service, and persists the result in the same transaction.
package services

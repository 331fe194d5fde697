// Package driver contains the Driver aggregate: a person with a vehicle of fixed box capacity who
// serves a set of neighborhoods.
//
// The driver's load counters are changed only together with the order they belong to:
// Reserve on assignment, StartRoute on dispatch, CompleteDelivery on delivery and
// ReleaseReservation when a cancelled order gives its boxes back.
package driver

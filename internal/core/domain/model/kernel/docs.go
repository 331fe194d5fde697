// Package kernel holds the value objects shared by the order and driver aggregates:
// identifiers, neighborhoods and the clock used to stamp lifecycle transitions.
package kernel

package driver

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Available
	EnRoute
	Inactive
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no wire representation
	return map[Status]string{
		Available: "available",
		EnRoute:   "en-route",
		Inactive:  "inactive",
	}
}

func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid driver status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

package kernel

import (
	"strings"
	"unicode/utf8"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// NeighborhoodNameMaxLength bounds a neighborhood name; it matches the column size in storage.
const NeighborhoodNameMaxLength = 100

var ErrNeighborhoodIsNotConstructed = errs.NewValueIsRequiredError(
	"neighborhood must be created via NewNeighborhood")

// Neighborhood is a delivery area a customer lives in and a driver may cover.
// Names are compared exactly after surrounding whitespace is trimmed.
type Neighborhood struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

func NewNeighborhood(name string) (Neighborhood, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Neighborhood{}, errs.NewValueIsRequiredError("neighborhood")
	}
	if n := utf8.RuneCountInString(name); n > NeighborhoodNameMaxLength {
		return Neighborhood{}, errs.NewValueIsOutOfRangeError("neighborhood length", n, 1, NeighborhoodNameMaxLength)
	}
	return Neighborhood{name: name, guard: guard.NewConstructorGuard()}, nil
}

// MustNewNeighborhood panics on invalid input. Intended for fixtures and constants.
func MustNewNeighborhood(name string) Neighborhood {
	n, err := NewNeighborhood(name)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Neighborhood) Name() string {
	return n.name
}

func (n Neighborhood) String() string {
	return n.name
}

func (n Neighborhood) Equals(other Neighborhood) bool {
	return n.name == other.name
}

func (n Neighborhood) IsEmpty() bool {
	return n.name == ""
}

func (n Neighborhood) Validate() error {
	return n.guard.Validate(ErrNeighborhoodIsNotConstructed)
}

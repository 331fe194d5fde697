package errs

import "fmt"

// BusinessRuleError is returned when a well-formed request is refused by a domain guard,
// for example cancelling a delivered order. Callers must not retry it.
type BusinessRuleError struct {
	Rule    string
	Message string
}

func NewBusinessRuleError(rule, message string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Message: message}
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolated, e.Message)
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRuleViolated
}

// ConflictError reports that a concurrent writer got there first: a version predicate matched
// no rows, a re-validated precondition no longer holds, or the database aborted the transaction.
// The operation may be retried from a fresh read.
type ConflictError struct {
	Resource string
	Cause    error
}

func NewConflictError(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

func NewConflictErrorWithCause(resource string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Resource), e.Cause)
}

// Unwrap exposes both ErrConflict and the cause so that errors.Is matches either.
func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}

// UpstreamUnavailableError reports a failing dependency such as the database or a directory lookup.
type UpstreamUnavailableError struct {
	Service string
	Cause   error
}

func NewUpstreamUnavailableError(service string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Service: service, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Service), e.Cause)
}

func (e *UpstreamUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Cause}
}

// Package errs holds the error vocabulary shared by the fleet service.
//
// Every error kind is a struct carrying the details of the failure plus a
// sentinel it unwraps to, so callers classify with errors.Is and inspect with errors.As:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input
//   - ObjectNotFoundError: an order, driver or customer does not exist
//   - BusinessRuleError: a lifecycle guard refused the operation
//   - ConflictError: a concurrent writer won; safe to retry from a fresh read
//   - UpstreamUnavailableError: the database or another dependency failed
//
// The HTTP adapter maps the sentinels to status codes in a single place.
package errs

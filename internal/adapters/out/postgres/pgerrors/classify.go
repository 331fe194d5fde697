// Package pgerrors translates PostgreSQL failures into the errs vocabulary.
package pgerrors

import (
	"context"
	"errors"
	"fmt"
	"net"

	"fleet/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateClassConnection      = "08"
	sqlStateAdminShutdown        = "57P01"
	sqlStateCannotConnectNow     = "57P03"
)

// Classify maps err to a typed error:
//   - serialization failures, deadlocks and lock timeouts become errs.ConflictError
//   - unique violations become errs.BusinessRuleError
//   - connection failures and server shutdowns become errs.UpstreamUnavailableError
//
// Anything else, including errors that are already typed, is returned with context added.
func Classify(resource string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlStateSerializationFailure,
			pgErr.Code == sqlStateDeadlockDetected,
			pgErr.Code == sqlStateLockNotAvailable:
			return errs.NewConflictErrorWithCause(resource, err)
		case pgErr.Code == sqlStateUniqueViolation:
			return errs.NewBusinessRuleError("unique-"+resource, resource+" already exists")
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == sqlStateClassConnection,
			pgErr.Code == sqlStateAdminShutdown,
			pgErr.Code == sqlStateCannotConnectNow:
			return errs.NewUpstreamUnavailableError("postgres", err)
		}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) {
		return errs.NewUpstreamUnavailableError("postgres", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewUpstreamUnavailableError("postgres", err)
	}

	return fmt.Errorf("%s: %w", resource, err)
}

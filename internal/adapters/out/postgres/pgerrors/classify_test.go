package pgerrors_test

import (
	"context"
	"errors"
	"testing"

	"fleet/internal/adapters/out/postgres/pgerrors"
	"fleet/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, errs.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, errs.ErrConflict},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, errs.ErrConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.ErrBusinessRuleViolated},
		{"connection failure", &pgconn.PgError{Code: "08006"}, errs.ErrUpstreamUnavailable},
		{"shutdown", &pgconn.PgError{Code: "57P01"}, errs.ErrUpstreamUnavailable},
		{"deadline", context.DeadlineExceeded, errs.ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, pgerrors.Classify("order", tt.err), tt.want)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, pgerrors.Classify("order", nil))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("syntax error")

		err := pgerrors.Classify("order", cause)

		require.ErrorIs(t, err, cause)
		assert.Equal(t, "order: syntax error", err.Error())
	})

	t.Run("typed errors pass through", func(t *testing.T) {
		notFound := errs.NewObjectNotFoundError("order", "1")

		require.ErrorIs(t, pgerrors.Classify("order", notFound), errs.ErrObjectNotFound)
	})
}

// Package repository implements store access over PostgreSQL. Every call is
// bounded by a timeout and failures are mapped onto the apperr taxonomy before
// they leave the package.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"storefront-backend/internal/apperr"
)

// SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

func callCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr converts a low-level database error into a typed one. The original
// error text is kept for server-side logs but callers branch on the sentinel.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: timed out: %w", op, apperr.ErrPersistence)
	default:
		return fmt.Errorf("%s: %w: %v", op, apperr.ErrPersistence, err)
	}
}

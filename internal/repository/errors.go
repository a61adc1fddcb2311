package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRep      = "22P02"
)

// unavailableClasses are SQLSTATE classes that mean the store cannot serve
// any request right now: connection exception, insufficient resources and
// operator intervention.
var unavailableClasses = map[string]bool{"08": true, "53": true, "57": true}

func pgErrorClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}

// mapError classifies a driver error. Unique violations become
// domain.ErrDuplicate; connection loss and cancelled contexts become
// domain.ErrStoreUnavailable so callers can tell them from record faults.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrDuplicate, pgErr.ConstraintName)
		case pgErr.Code == pgForeignKeyViolation, pgErr.Code == pgInvalidTextRep:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrNotFound, pgErr.Message)
		case unavailableClasses[pgErrorClass(pgErr.Code)]:
			return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

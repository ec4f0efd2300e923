// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isExclusionViolation reports whether err is the meetings room/time exclusion
// constraint (or a unique constraint) firing. SQLSTATE 23P01 is
// exclusion_violation, 23505 is unique_violation.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

// isUniqueViolation reports whether err is a unique constraint firing.
// SQLSTATE 23505 is unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

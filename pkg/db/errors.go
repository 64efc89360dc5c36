package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// IsUniqueViolation reports whether the provided error references a Postgres
// unique violation constraint. When constraintName is provided, the helper looks
// for the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value")
}

// IsForeignKeyViolation reports whether the error is a Postgres foreign key
// violation (SQLSTATE 23503), regardless of which driver produced it.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23503"
	}
	return strings.Contains(err.Error(), "violates foreign key constraint")
}

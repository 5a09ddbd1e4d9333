package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation from
// the storage driver. Postgres surfaces code 23505; the SQLite driver used in
// tests only gives us its message text.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

package postgres

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"
)

// ParseID parses a numeric primary key from a path segment.
func ParseID(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: id cannot be empty", ErrInvalidID)
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	return id, nil
}

// ErrorClass returns the SQLSTATE class name of a PostgreSQL error, or "" when err
// does not come from the server.
func ErrorClass(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}

	return pqErr.Code.Class().Name()
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation"
}

package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateKey is returned when an insert loses a unique-constraint
// race; callers decide whether that is an error or a no-op.
var ErrDuplicateKey = errors.New("duplicate key")

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// The sqlite driver used in tests reports constraint violations as
	// plain strings.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

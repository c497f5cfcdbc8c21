package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a storage-level uniqueness
// failure. The composite-key constraints are enforced by the database, so a
// concurrent insert that loses the race surfaces here rather than as a
// duplicate row.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL unique violation, SQLSTATE 23505
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite wording, used by the in-memory test databases
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

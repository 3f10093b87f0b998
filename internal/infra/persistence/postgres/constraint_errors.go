package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes used by the repositories.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Named unique indexes declared on the persistence models.
const (
	constraintUsersEmail        = "idx_users_email"
	constraintProfilesUsername  = "idx_profiles_username"
	constraintOrdersOrderNumber = "idx_orders_order_number"
)

func pgErrorCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation
}

// isUniqueViolationOn reports a unique violation on the named index. When the
// constraint name is not available the message is checked instead.
func isUniqueViolationOn(err error, constraint string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}
	if code, name, ok := pgErrorCode(err); ok && code == pgUniqueViolation && name != "" {
		return name == constraint
	}

	return strings.Contains(err.Error(), constraint)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgErrorCode(err)

	return ok && code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}

package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Constraint names from the migrations.
const (
	constraintUsersUsername = "uk_users_username"
	constraintUsersEmail    = "uk_users_email"
	constraintProductsCode  = "uk_products_code"
	constraintProductsName  = "uk_products_name"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// uniqueViolation reports whether err is a unique violation and, when the
// driver exposes it, the name of the violated constraint.
func uniqueViolation(err error) (constraint string, ok bool) {
	if pgErr, isPg := asPgError(err); isPg {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	return false
}

func isCheckConstraintViolation(err error) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgCheckViolation
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

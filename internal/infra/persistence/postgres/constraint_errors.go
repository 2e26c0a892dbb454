package postgres

import (
	"strings"

	"blindauth/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is PostgreSQL's unique_violation SQLSTATE.
const uniqueViolationCode = "23505"

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Only reported when the session enables TranslateError.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, uniqueViolationCode)
}

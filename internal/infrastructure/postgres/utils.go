package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// isOutOfRange verifica si un valor no cabe en el tipo de la columna (22003).
func isOutOfRange(err error) bool {
	return pgCode(err) == codeNumericOutOfRange
}

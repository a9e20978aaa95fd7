package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок Postgres: https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

// IsPgErrorWithCode проверяет что ошибка пришла от Postgres с указанным кодом.
// Используется для маппинга unique_violation в доменный конфликт.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code
}

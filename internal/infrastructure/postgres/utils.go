package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation según los códigos de error de PostgreSQL.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un constraint único (el email de
// users es el único del esquema); los repos lo traducen a su sentinel de
// dominio. Con pgx el error llega siempre como *pgconn.PgError, no hace falta
// inspeccionar el texto.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

package postgres

import (
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx, permitindo reutilizar as mesmas
// queries dentro e fora de uma transação
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)

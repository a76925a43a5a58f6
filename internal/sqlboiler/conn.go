package sqlboiler

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
)

// Conn adapts a checked-out *sql.Conn to boil.ContextExecutor so that several
// statements can run on one session.
type Conn struct {
	*sql.Conn
}

var _ boil.ContextExecutor = Conn{}

func (c Conn) Exec(query string, args ...any) (sql.Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c Conn) Query(query string, args ...any) (*sql.Rows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c Conn) QueryRow(query string, args ...any) *sql.Row {
	return c.QueryRowContext(context.Background(), query, args...)
}

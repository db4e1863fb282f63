package remodel

import (
	"context"
	"database/sql"
)

// SqlInterface is the sql abstraction used by FetchSQLRecords
//
// it is satisfied by *sql.DB, *sql.Tx and *sql.Conn
type SqlInterface interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

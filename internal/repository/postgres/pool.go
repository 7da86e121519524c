// Package postgres contains PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPool is the subset of pgxpool.Pool the user and task repositories rely
// on. pgxmock.PgxPoolIface implements it too, which keeps repository tests
// off a live database.
type PgxPool interface {
	// Exec runs a statement and reports the resulting command tag.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// Query runs a SELECT expected to return any number of rows.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRow runs a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// BeginTx opens a transaction with the given options.
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	// Close releases all pooled connections.
	Close()
}

// DB is the handle repositories are constructed around. Acquisition and
// release of connections is scoped per operation by the pool itself.
type DB struct{ Pool PgxPool }

// New opens a connection pool against the FocusFlow database.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

// Close shuts the pool down.
func (db *DB) Close() { db.Pool.Close() }

// isUniqueViolation reports whether err is Postgres error 23505, the unique
// constraint violation raised when an email lookup digest is already taken.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

package database

import (
	"context"
	"database/sql"
)

// Pinger is the slice of DB the health probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DB is the store handle shared by every repository. Rows and Row are
// returned in the driver's native scan semantics, so text[] and uuid columns
// scan straight into []string and uuid.UUID.
type DB interface {
	Pinger
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	SQLDB() *sql.DB
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

// Package db wires the Postgres connection, repositories, and schema
// migrations behind a single repository manager.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookkeeper/internal/server/books"
	"github.com/dmitrijs2005/bookkeeper/internal/server/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Books() books.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}

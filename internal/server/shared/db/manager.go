// Package db wires the database connection, migrations, and repositories
// behind a single manager owned by process startup.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountd/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}

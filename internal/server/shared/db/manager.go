// Package db owns the database connection pool shared by all repositories
// and the schema lifecycle (goose migrations, readiness probe).
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository

	// SchemaReady confirms the users table exists and logs the current row
	// count. Configuration or connectivity problems surface as false, not as
	// distinguishable errors: callers only need to know they cannot serve.
	SchemaReady(context.Context) bool

	Close() error
}

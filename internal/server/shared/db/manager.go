// Package db wires the persistence layer: it opens the database, runs the
// embedded migrations, and hands out repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dvargas92/fotoapp/internal/server/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	RunMigrations(ctx context.Context) error
}

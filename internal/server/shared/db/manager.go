// Package db wires the repository implementations to a storage backend and
// runs schema migrations where the backend needs them.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/solsocial/internal/server/posts"
	"github.com/dmitrijs2005/solsocial/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Posts() posts.Repository
}

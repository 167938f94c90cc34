package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/solsocial/internal/server/posts"
	"github.com/dmitrijs2005/solsocial/internal/server/users"
)

// InMemoryRepositoryManager serves development and test runs without a
// database. Selected by an empty DSN.
type InMemoryRepositoryManager struct {
	users users.Repository
	posts posts.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		posts: posts.NewInMemoryRepository(),
	}
}

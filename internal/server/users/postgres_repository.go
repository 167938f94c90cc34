package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresRepository(db *sql.DB, timeout time.Duration) (*PostgresRepository, error) {
	return &PostgresRepository{db: db, timeout: timeout}, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query :=
		`INSERT INTO users (id, wallet_address, display_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (wallet_address)
		 DO UPDATE SET display_name = COALESCE(NULLIF(EXCLUDED.display_name, ''), users.display_name)
		 RETURNING id, wallet_address, display_name, created_at
		 `

	stored := &models.User{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), user.WalletAddress, user.DisplayName).
		Scan(&stored.ID, &stored.WalletAddress, &stored.DisplayName, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return stored, nil
}

func (r *PostgresRepository) GetByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query :=
		`SELECT id, wallet_address, display_name, created_at FROM users
		 WHERE wallet_address = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, walletAddress).
		Scan(&user.ID, &user.WalletAddress, &user.DisplayName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

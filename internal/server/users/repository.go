package users

import (
	"context"

	"github.com/dmitrijs2005/solsocial/internal/server/models"
)

type Repository interface {
	// Upsert creates the user on first sight of the wallet and returns the
	// stored row. A non-empty DisplayName overwrites the stored one;
	// an empty DisplayName leaves it untouched.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)

	// GetByWallet returns the user or common.ErrorNotFound.
	GetByWallet(ctx context.Context, walletAddress string) (*models.User, error)
}

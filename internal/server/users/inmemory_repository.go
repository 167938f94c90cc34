package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository backs unit tests and the store-less development mode.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[user.WalletAddress]
	if !ok {
		existing = &models.User{
			ID:            uuid.NewString(),
			WalletAddress: user.WalletAddress,
			CreatedAt:     time.Now().UTC(),
		}
		r.items[user.WalletAddress] = existing
	}
	if user.DisplayName != "" {
		existing.DisplayName = user.DisplayName
	}

	copied := *existing
	return &copied, nil
}

func (r *InMemoryRepository) GetByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	existing, ok := r.items[walletAddress]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *existing
	return &copied, nil
}

package posts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
)

// InMemoryRepository keeps posts in a map. It backs unit tests and the
// store-less development mode; semantics match the Postgres implementation.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*memPost
}

// memPost carries its own lock so that toggles on different posts do not
// serialize against each other.
type memPost struct {
	mu      sync.Mutex
	post    models.Post
	likedBy map[string]struct{}
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int64]*memPost)}
}

func (r *InMemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := &memPost{
		post: models.Post{
			ID:            r.nextID,
			Content:       post.Content,
			Author:        post.Author,
			WalletAddress: post.WalletAddress,
			CreatedAt:     time.Now().UTC(),
		},
		likedBy: make(map[string]struct{}),
	}
	r.items[stored.post.ID] = stored

	return snapshot(stored), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Post, 0, len(r.items))
	for _, item := range r.items {
		item.mu.Lock()
		result = append(result, snapshot(item))
		item.mu.Unlock()
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	r.mu.RLock()
	item, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrorNotFound
	}

	item.mu.Lock()
	defer item.mu.Unlock()
	return snapshot(item), nil
}

func (r *InMemoryRepository) ToggleLike(ctx context.Context, postID int64, walletAddress string) (*models.Post, error) {
	r.mu.RLock()
	item, ok := r.items[postID]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrorNotFound
	}

	// The per-post mutex makes the membership check and the set+count
	// update one indivisible step.
	item.mu.Lock()
	defer item.mu.Unlock()

	if _, liked := item.likedBy[walletAddress]; liked {
		delete(item.likedBy, walletAddress)
		item.post.LikeCount--
	} else {
		item.likedBy[walletAddress] = struct{}{}
		item.post.LikeCount++
	}

	return snapshot(item), nil
}

// snapshot copies the stored post; callers own the result. Caller must hold
// the per-post lock.
func snapshot(item *memPost) *models.Post {
	copied := item.post
	copied.LikedBy = make([]string, 0, len(item.likedBy))
	for w := range item.likedBy {
		copied.LikedBy = append(copied.LikedBy, w)
	}
	sort.Strings(copied.LikedBy)
	copied.LikeCount = int64(len(item.likedBy))
	return &copied
}

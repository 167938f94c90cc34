package posts

import (
	"context"

	"github.com/dmitrijs2005/solsocial/internal/server/models"
)

// Repository is the injected store abstraction for posts. The store is the
// sole mutator of like_count/liked_by; ToggleLike must perform its
// read-modify-write as one atomic step per post.
type Repository interface {
	// Create persists a new post, assigning a strictly increasing id and a
	// store-side timestamp.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)

	// List returns all posts ordered by created_at descending, ties broken
	// by id descending.
	List(ctx context.Context) ([]*models.Post, error)

	// GetByID returns one post or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// ToggleLike flips wallet's membership in the post's liked-by set and
	// adjusts like_count in the same atomic step. Returns the updated post
	// or common.ErrorNotFound.
	ToggleLike(ctx context.Context, postID int64, walletAddress string) (*models.Post, error)
}

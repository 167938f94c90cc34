package posts

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/dbx"
	"github.com/dmitrijs2005/solsocial/internal/logging"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
)

// Service validates input at the boundary and delegates persistence to the
// injected Repository.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "post_service"),
	}
}

// Create publishes a new post for the authenticated wallet. Content must be
// 1–280 characters, the author display name 3–50.
func (s *Service) Create(ctx context.Context, content, author, walletAddress string) (*models.Post, error) {
	if n := utf8.RuneCountInString(content); n < models.ContentMinLen || n > models.ContentMaxLen {
		return nil, fmt.Errorf("%w: content must be %d-%d characters",
			common.ErrorValidation, models.ContentMinLen, models.ContentMaxLen)
	}
	if n := utf8.RuneCountInString(author); n < models.AuthorMinLen || n > models.AuthorMaxLen {
		return nil, fmt.Errorf("%w: author must be %d-%d characters",
			common.ErrorValidation, models.AuthorMinLen, models.AuthorMaxLen)
	}

	post, err := s.repo.Create(ctx, &models.Post{
		Content:       content,
		Author:        author,
		WalletAddress: walletAddress,
	})
	if err != nil {
		s.logger.Error(ctx, "post creation failed", "wallet", walletAddress, "error", err)
		return nil, dbx.StoreError(err)
	}

	s.logger.Info(ctx, "post created", "id", post.ID, "wallet", walletAddress)
	return post, nil
}

// List returns the feed in reverse-chronological order.
func (s *Service) List(ctx context.Context) ([]*models.Post, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "post listing failed", "error", err)
		return nil, dbx.StoreError(err)
	}
	if result == nil {
		result = []*models.Post{}
	}
	return result, nil
}

// ToggleLike flips the (post, wallet) like state and returns the updated
// post. Missing posts surface as common.ErrorNotFound.
func (s *Service) ToggleLike(ctx context.Context, postID int64, walletAddress string) (*models.Post, error) {
	post, err := s.repo.ToggleLike(ctx, postID, walletAddress)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "like toggle failed", "post_id", postID, "wallet", walletAddress, "error", err)
		return nil, dbx.StoreError(err)
	}

	s.logger.Info(ctx, "like toggled", "post_id", postID, "wallet", walletAddress, "like_count", post.LikeCount)
	return post, nil
}

// Package posts provides the post store and the like-toggle state machine
// behind it, with PostgreSQL and in-memory implementations.
package posts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/dbx"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
)

// PostgresRepository implements post storage over *sql.DB (pgx stdlib).
// Likes live in the post_likes relation; posts.like_count is maintained in
// the same transaction so that like_count == |liked_by| holds at all times.
//
// Every operation runs under a deadline so a hung database fails the
// request instead of stalling it.
type PostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresRepository(db *sql.DB, timeout time.Duration) (*PostgresRepository, error) {
	return &PostgresRepository{db: db, timeout: timeout}, nil
}

func (r *PostgresRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// likedByExpr aggregates the liked-by set as a JSON array; scanning text[]
// through database/sql is driver-dependent, JSON is not.
const likedByExpr = `COALESCE(json_agg(l.wallet_address ORDER BY l.wallet_address) FILTER (WHERE l.wallet_address IS NOT NULL), '[]')::text`

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO posts (content, author, wallet_address, like_count, created_at)
		VALUES ($1, $2, $3, 0, now())
		RETURNING id, created_at
		`

	err := r.db.QueryRowContext(ctx, query,
		post.Content, post.Author, post.WalletAddress).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	post.LikeCount = 0
	post.LikedBy = []string{}
	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.content, p.author, p.wallet_address, p.like_count, p.created_at, ` + likedByExpr + `
		FROM posts p
		LEFT JOIN post_likes l ON l.post_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		item, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	return getByID(ctx, r.db, id)
}

// ToggleLike serializes concurrent toggles on the same post with a row lock:
// the post row is locked FOR UPDATE for the whole read-modify-write, so the
// membership check and the set+count update are one indivisible step.
// Toggles on different posts lock different rows and proceed in parallel.
func (r *PostgresRepository) ToggleLike(ctx context.Context, postID int64, walletAddress string) (*models.Post, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var updated *models.Post

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error locking post: %w", err)
		}

		var liked bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND wallet_address = $2)`,
			postID, walletAddress).Scan(&liked)
		if err != nil {
			return fmt.Errorf("error reading like membership: %w", err)
		}

		if liked {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM post_likes WHERE post_id = $1 AND wallet_address = $2`,
				postID, walletAddress); err != nil {
				return fmt.Errorf("error removing like: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE posts SET like_count = like_count - 1 WHERE id = $1`, postID); err != nil {
				return fmt.Errorf("error decrementing like count: %w", err)
			}
		} else {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO post_likes (post_id, wallet_address) VALUES ($1, $2)`,
				postID, walletAddress); err != nil {
				return fmt.Errorf("error adding like: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE posts SET like_count = like_count + 1 WHERE id = $1`, postID); err != nil {
				return fmt.Errorf("error incrementing like count: %w", err)
			}
		}

		updated, err = getByID(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func getByID(ctx context.Context, db dbx.DBTX, id int64) (*models.Post, error) {
	query := `
		SELECT p.id, p.content, p.author, p.wallet_address, p.like_count, p.created_at, ` + likedByExpr + `
		FROM posts p
		LEFT JOIN post_likes l ON l.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
		`

	row := db.QueryRowContext(ctx, query, id)
	post, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select post: %w", err)
	}
	return post, nil
}

func scanPost(scan func(dest ...any) error) (*models.Post, error) {
	var item models.Post
	var likedByJSON string

	if err := scan(&item.ID, &item.Content, &item.Author, &item.WalletAddress,
		&item.LikeCount, &item.CreatedAt, &likedByJSON); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(likedByJSON), &item.LikedBy); err != nil {
		return nil, fmt.Errorf("failed to decode liked_by: %w", err)
	}
	if item.LikedBy == nil {
		item.LikedBy = []string{}
	}
	return &item, nil
}

package models

import "time"

const (
	// Content length bounds for a post, in characters.
	ContentMinLen = 1
	ContentMaxLen = 280

	// Display name bounds for the post author.
	AuthorMinLen = 3
	AuthorMaxLen = 50
)

// Post is a short text message published by a wallet.
//
// LikeCount always equals len(LikedBy); the repository is the only mutator
// of either field and changes them in one atomic step.
type Post struct {
	ID            int64     `json:"id"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	WalletAddress string    `json:"wallet_address"`
	LikeCount     int64     `json:"likes"`
	LikedBy       []string  `json:"liked_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// Liked reports whether wallet is in the post's LikedBy set.
func (p *Post) Liked(wallet string) bool {
	for _, w := range p.LikedBy {
		if w == wallet {
			return true
		}
	}
	return false
}

package models

import "time"

// User is created lazily on first successful wallet authentication and is
// never deleted. The wallet address is the identity; no secret material is
// stored server-side.
type User struct {
	ID            string
	WalletAddress string
	DisplayName   string
	CreatedAt     time.Time
}

// Package auth mints and validates the bearer tokens that bind a request
// to a verified wallet address. Tokens are stateless: there is no revocation
// list, so a leaked token is valid until it expires (accepted risk).
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated wallet
// address as the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 token with sub=walletAddress,
// iat=now and exp=now+validityDuration.
func GenerateToken(walletAddress string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   walletAddress,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetWalletFromToken validates tokenString and extracts the wallet address.
// Expired tokens map to common.ErrTokenExpired, anything else that fails
// validation to common.ErrInvalidToken.
func GetWalletFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

// Package siws implements the sign-in-with-wallet challenge flow: the
// server hands the client a canonical message, the wallet extension signs
// it with the wallet's ed25519 private key, and the server verifies the
// signature against the base58-encoded public key that is the wallet
// address.
package siws

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/google/uuid"
)

// Marker is the fixed first line every challenge must carry. Its presence
// prevents replay of arbitrary pre-signed messages: the server only accepts
// signatures over text it could have issued itself.
const Marker = "SolSocial wants you to sign in with your wallet:"

const issuedAtLayout = time.RFC3339

// Challenge is the structured form of the message the client signs.
type Challenge struct {
	WalletAddress string
	Nonce         string
	IssuedAt      time.Time
}

// NewChallenge builds a fresh challenge for the given wallet with a random
// nonce and the current timestamp.
func NewChallenge(walletAddress string) *Challenge {
	return &Challenge{
		WalletAddress: walletAddress,
		Nonce:         uuid.NewString(),
		IssuedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

// Message renders the canonical text to be signed.
func (c *Challenge) Message() string {
	return fmt.Sprintf("%s\n%s\n\nNonce: %s\nIssued At: %s",
		Marker, c.WalletAddress, c.Nonce, c.IssuedAt.Format(issuedAtLayout))
}

// ParseMessage parses a canonical challenge message back into its parts.
// Any deviation from the expected layout fails with common.ErrorValidation.
func ParseMessage(message string) (*Challenge, error) {
	lines := strings.Split(message, "\n")
	if len(lines) != 5 || lines[0] != Marker || lines[2] != "" {
		return nil, common.ErrorValidation
	}

	nonce, ok := strings.CutPrefix(lines[3], "Nonce: ")
	if !ok || nonce == "" {
		return nil, common.ErrorValidation
	}

	issuedAtRaw, ok := strings.CutPrefix(lines[4], "Issued At: ")
	if !ok {
		return nil, common.ErrorValidation
	}
	issuedAt, err := time.Parse(issuedAtLayout, issuedAtRaw)
	if err != nil {
		return nil, common.ErrorValidation
	}

	return &Challenge{
		WalletAddress: lines[1],
		Nonce:         nonce,
		IssuedAt:      issuedAt,
	}, nil
}

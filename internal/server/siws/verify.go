package siws

import (
	"crypto/ed25519"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/mr-tron/base58"
)

// DecodeAddress decodes a base58 wallet address into an ed25519 public key.
// Anything that is not valid base58 of exactly 32 bytes fails with
// common.ErrorInvalidAddress.
func DecodeAddress(walletAddress string) (ed25519.PublicKey, error) {
	raw, err := base58.Decode(walletAddress)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, common.ErrorInvalidAddress
	}
	return ed25519.PublicKey(raw), nil
}

// Verify reports whether signature is a valid ed25519 signature of message
// by the wallet's private key. It is a pure function over its inputs and
// fails closed: malformed addresses or signatures return false, never an
// error or a panic.
func Verify(walletAddress, message string, signature []byte) bool {
	pub, err := DecodeAddress(walletAddress)
	if err != nil {
		return false
	}
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pub, []byte(message), signature)
}

// Verifier checks signed challenges against the application-level policy:
// the message must be a canonical challenge for the claimed wallet and its
// timestamp must fall inside the freshness window.
//
// There is no server-side nonce store, so a signed challenge stays
// replayable until the window closes. That residual risk is accepted to
// keep verification stateless.
type Verifier struct {
	window time.Duration
	now    func() time.Time
}

func NewVerifier(window time.Duration) *Verifier {
	return &Verifier{window: window, now: time.Now}
}

// VerifyChallenge validates the full triple. It returns nil only when the
// message parses as a challenge for walletAddress, is fresh, and carries a
// valid signature.
//
// Errors: common.ErrorValidation (malformed message),
// common.ErrorInvalidAddress (address mismatch or undecodable),
// common.ErrChallengeExpired (outside the window),
// common.ErrSignatureMismatch (bad signature).
func (v *Verifier) VerifyChallenge(walletAddress, message string, signature []byte) error {
	ch, err := ParseMessage(message)
	if err != nil {
		return err
	}
	if ch.WalletAddress != walletAddress {
		return common.ErrorInvalidAddress
	}

	now := v.now()
	if ch.IssuedAt.After(now.Add(time.Minute)) || now.Sub(ch.IssuedAt) > v.window {
		return common.ErrChallengeExpired
	}

	if !Verify(walletAddress, message, signature) {
		return common.ErrSignatureMismatch
	}
	return nil
}

package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/common"
	"github.com/dmitrijs2005/solsocial/internal/dbx"
	"github.com/dmitrijs2005/solsocial/internal/logging"
	"github.com/dmitrijs2005/solsocial/internal/server/auth"
	"github.com/dmitrijs2005/solsocial/internal/server/captcha"
	"github.com/dmitrijs2005/solsocial/internal/server/config"
	"github.com/dmitrijs2005/solsocial/internal/server/models"
	"github.com/dmitrijs2005/solsocial/internal/server/siws"
)

// AuthResult is what a successful wallet authentication yields.
type AuthResult struct {
	WalletAddress string
	Token         string
}

// Service runs the wallet authentication flow: captcha (when configured),
// challenge-signature verification, lazy user creation, token issuance.
type Service struct {
	repo                  Repository
	verifier              *siws.Verifier
	captcha               *captcha.Client
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, verifier *siws.Verifier, captchaClient *captcha.Client, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		repo:                  repo,
		verifier:              verifier,
		captcha:               captchaClient,
		logger:                logger.With("module", "user_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// IssueChallenge returns the canonical message the wallet should sign.
// The wallet address must decode as a valid public key.
func (s *Service) IssueChallenge(ctx context.Context, walletAddress string) (string, error) {
	if _, err := siws.DecodeAddress(walletAddress); err != nil {
		return "", err
	}
	return siws.NewChallenge(walletAddress).Message(), nil
}

// Authenticate verifies the signed challenge (and the captcha response when
// captcha is configured), lazily creates the user row and mints a bearer
// token bound to the wallet.
//
// All verification failures collapse to common.ErrorUnauthorized so the
// client never learns which check failed; the precise cause is logged.
func (s *Service) Authenticate(ctx context.Context, walletAddress, message string, signature []byte, captchaResponse string) (*AuthResult, error) {

	if err := s.captcha.Verify(ctx, captchaResponse); err != nil {
		if errors.Is(err, common.ErrorDependency) {
			s.logger.Error(ctx, "captcha service unavailable", "wallet", walletAddress, "error", err)
			return nil, err
		}
		s.logger.Warn(ctx, "captcha verification failed", "wallet", walletAddress)
		return nil, common.ErrorUnauthorized
	}

	if err := s.verifier.VerifyChallenge(walletAddress, message, signature); err != nil {
		s.logger.Warn(ctx, "wallet verification failed", "wallet", walletAddress, "error", err)
		return nil, common.ErrorUnauthorized
	}

	if _, err := s.repo.Upsert(ctx, &models.User{WalletAddress: walletAddress}); err != nil {
		s.logger.Error(ctx, "user upsert failed", "wallet", walletAddress, "error", err)
		return nil, dbx.StoreError(err)
	}

	token, err := auth.GenerateToken(walletAddress, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "wallet", walletAddress, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "wallet authenticated", "wallet", walletAddress)
	return &AuthResult{WalletAddress: walletAddress, Token: token}, nil
}

// UpdateDisplayName mirrors the author name a wallet last posted under onto
// its user row. Best effort: failures are logged, not surfaced.
func (s *Service) UpdateDisplayName(ctx context.Context, walletAddress, displayName string) {
	if displayName == "" {
		return
	}
	if _, err := s.repo.Upsert(ctx, &models.User{WalletAddress: walletAddress, DisplayName: displayName}); err != nil {
		s.logger.Warn(ctx, "display name update failed", "wallet", walletAddress, "error", err)
	}
}

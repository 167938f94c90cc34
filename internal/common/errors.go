// Package common defines shared constants and sentinel errors used across
// SolSocial components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Input validation errors.
	ErrorValidation     = errors.New("validation error")
	ErrorInvalidAddress = errors.New("invalid wallet address")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Signature / challenge errors.
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrChallengeExpired  = errors.New("challenge expired")

	// External collaborator errors (captcha service, database). Retryable.
	ErrorDependency = errors.New("dependency unavailable")
)

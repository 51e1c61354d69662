// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(adminID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the moderator authentication use cases.
type Service struct {
	adminRepository   AdminRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(adminRepo AdminRepository, sessionRepo SessionRepository, tokenProv TokenProvider) *Service {
	return &Service{
		adminRepository:   adminRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginSession represents a successfully established moderator session.
type LoginSession struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	Admin                 *Admin    `json:"admin"`
}

/*
Login validates moderator credentials and issues a token pair.

Description: Password verification is a constant-time bcrypt comparison. The
failure message never distinguishes a missing account from a wrong password,
so usernames cannot be enumerated through this endpoint.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session credentials
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	admin, err := service.adminRepository.FindByUsername(context, input.Username)

	// Generic message to prevent enumeration
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, admin.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	return service.issueSession(context, admin)
}

/*
Refresh implements refresh token rotation.

Description: The presented token is hashed and looked up; a hit revokes the
old session immediately so the token can never be replayed, then a fresh pair
is issued. A miss means the token is expired, already rotated, or forged.

Returns:
  - *LoginSession: Rotated credentials
  - error: Unauthorized or storage failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*LoginSession, error) {

	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.Get(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: revoke before reissue to block replays
	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	admin, err := service.adminRepository.FindByID(context, session.AdminID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found")
	}

	return service.issueSession(context, admin)
}

/*
Logout revokes the presented refresh token. Unknown tokens are treated as
already logged out; the operation is idempotent.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessionRepository.Delete(context, sec.HashToken(refreshToken))
}

// issueSession mints an access token and a fresh refresh session for admin.
func (service *Service) issueSession(context context.Context, admin *Admin) (*LoginSession, error) {

	// Short-lived access token
	accessToken, err := service.tokenProvider.GenerateAccessToken(admin.ID, admin.Username, string(admin.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Long-lived opaque refresh token; only its hash is stored
	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		AdminID:   admin.ID,
		ExpiresAt: expiresAt,
	}

	if err := service.sessionRepository.Set(context, sec.HashToken(refreshToken), session, RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Admin:                 admin,
	}, nil
}

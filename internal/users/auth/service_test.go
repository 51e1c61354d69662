// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/sec"
	"github.com/uabcampos/fac-virtual-posters/internal/users/auth"
)

// fakeAdminRepository serves a fixed admin roster.
type fakeAdminRepository struct {
	admins []*auth.Admin
}

func (f *fakeAdminRepository) FindByID(_ context.Context, id string) (*auth.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperr.NotFound("admin")
}

func (f *fakeAdminRepository) FindByUsername(_ context.Context, username string) (*auth.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperr.NotFound("admin")
}

func (f *fakeAdminRepository) Create(_ context.Context, a *auth.Admin) error {
	f.admins = append(f.admins, a)
	return nil
}

// fakeSessionRepository is an in-memory token-hash store. TTLs are accepted
// but not enforced; expiry behavior belongs to Redis.
type fakeSessionRepository struct {
	sessions map[string]*auth.Session
}

func (f *fakeSessionRepository) Set(_ context.Context, tokenHash string, s *auth.Session, _ time.Duration) error {
	f.sessions[tokenHash] = s
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, tokenHash string) (*auth.Session, error) {
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, apperr.NotFound("session")
	}
	return s, nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

// fakeTokenProvider mints predictable access tokens.
type fakeTokenProvider struct {
	issued int
}

func (f *fakeTokenProvider) GenerateAccessToken(adminID, _, _ string, _ time.Duration) (string, error) {
	f.issued++
	return fmt.Sprintf("token-%s-%d", adminID, f.issued), nil
}

func newAuthService(t *testing.T) (*auth.Service, *fakeSessionRepository) {
	t.Helper()

	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	admins := &fakeAdminRepository{admins: []*auth.Admin{{
		ID:           "0190163d-8694-7ccc-8000-0000000000ad",
		Username:     "moderator",
		PasswordHash: hash,
		DisplayName:  "On-call Moderator",
		Role:         sec.RoleModerator,
	}}}
	sessions := &fakeSessionRepository{sessions: make(map[string]*auth.Session)}

	return auth.NewService(admins, sessions, &fakeTokenProvider{}), sessions
}

/*
TestLogin_Success verifies a valid credential pair yields a full session.
*/
func TestLogin_Success(t *testing.T) {
	service, sessions := newAuthService(t)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "moderator",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
	require.NotNil(t, session.Admin)
	assert.Equal(t, "moderator", session.Admin.Username)

	// Only the hash of the refresh token is stored
	assert.Len(t, sessions.sessions, 1)
	_, raw := sessions.sessions[session.RefreshToken]
	assert.False(t, raw)
	_, hashed := sessions.sessions[sec.HashToken(session.RefreshToken)]
	assert.True(t, hashed)
}

/*
TestLogin_Failures verifies wrong passwords and unknown accounts are
indistinguishable to the caller.
*/
func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", "moderator", "incorrect-horse"},
		{"unknown_account", "nobody", "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAuthService(t)

			_, err := service.Login(context.Background(), auth.LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 401, ae.HTTPStatus)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

/*
TestRefresh_Rotation verifies the presented token is revoked on use: the
rotated pair works, the old token never does again.
*/
func TestRefresh_Rotation(t *testing.T) {
	service, _ := newAuthService(t)

	first, err := service.Login(context.Background(), auth.LoginInput{
		Username: "moderator",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	second, err := service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)

	// Replaying the rotated-out token fails
	_, err = service.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, apperr.As(err).HTTPStatus)

	// The new token still works
	_, err = service.Refresh(context.Background(), second.RefreshToken)
	require.NoError(t, err)
}

/*
TestRefresh_UnknownToken verifies forged or expired tokens get a 401.
*/
func TestRefresh_UnknownToken(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Refresh(context.Background(), "never-issued")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 401, ae.HTTPStatus)
	assert.Equal(t, "Invalid or expired refresh token", ae.Message)
}

/*
TestLogout verifies revocation and its idempotence.
*/
func TestLogout(t *testing.T) {
	service, sessions := newAuthService(t)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "moderator",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, sessions.sessions)

	// Logging out twice, or with a token that never existed, is fine
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, service.Logout(context.Background(), "never-issued"))

	// The revoked token cannot refresh
	_, err = service.Refresh(context.Background(), session.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, apperr.As(err).HTTPStatus)
}

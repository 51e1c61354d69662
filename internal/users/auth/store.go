// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth

import (
	"context"
	"time"
)

// AdminRepository abstracts admin account persistence.
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*Admin, error)
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
}

// SessionRepository abstracts refresh session storage.
//
// Sessions are keyed by the hash of the opaque refresh token; expiry is
// delegated to the store's TTL machinery, so there is no revocation flag.
// Deleting the key revokes the session.
type SessionRepository interface {
	Set(ctx context.Context, tokenHash string, session *Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (*Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

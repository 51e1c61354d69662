// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

/*
Package auth implements moderator identity and access management.

It covers credential verification, RSA-signed access tokens, and refresh
session lifecycle (opaque rotated tokens stored in Redis).

Architecture:

  - Service: Orchestrates login, refresh rotation, and logout.
  - AdminRepository: Postgres-backed account lookups.
  - SessionRepository: Redis-backed refresh sessions with TTL expiry.
*/
package auth

import (
	"time"

	"github.com/uabcampos/fac-virtual-posters/internal/platform/sec"
)

// Admin is a moderation-console account. There is no self-service signup;
// accounts are provisioned by operators.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a refresh session tracked in Redis. Only the hash of the opaque
// refresh token is stored; the token itself exists solely on the client.
type Session struct {
	AdminID   string    `json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

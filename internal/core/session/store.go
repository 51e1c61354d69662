// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package session

import "context"

// Repository abstracts session persistence.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	GetBySlug(ctx context.Context, slug string) (*Session, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*Session, error)
	SetStatus(ctx context.Context, id string, status Status) (*Session, error)
}

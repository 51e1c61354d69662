// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package comment

import "context"

// Repository abstracts comment persistence.
type Repository interface {
	// Create inserts c. The caller supplies ID and CreatedAt.
	Create(ctx context.Context, c *Comment) error

	// GetByID returns a comment regardless of visibility.
	GetByID(ctx context.Context, id string) (*Comment, error)

	// ListVisibleByPoster returns every non-hidden comment on a poster,
	// oldest first. Thread shaping happens in the service.
	ListVisibleByPoster(ctx context.Context, posterID string) ([]*Comment, error)

	// Like atomically increments the like counter and returns the updated
	// comment.
	Like(ctx context.Context, id string) (*Comment, error)

	// SetHidden flips visibility and returns the updated comment.
	SetHidden(ctx context.Context, id string, hidden bool) (*Comment, error)

	// Delete removes a comment and its direct replies in one transaction.
	Delete(ctx context.Context, id string) error

	// Recent returns the latest comments across all posters with the
	// owning poster's title annotated, for the moderation dashboard.
	Recent(ctx context.Context, limit int) ([]*Comment, error)
}

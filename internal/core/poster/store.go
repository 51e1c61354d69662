// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package poster

import (
	"context"

	"github.com/uabcampos/fac-virtual-posters/pkg/pagination"
)

// Repository abstracts poster persistence.
//
// Implementations must return apperr-wrapped errors: ErrNotFound for missing
// rows and a Conflict for slug unique violations (the intake service relies
// on the latter to retry with a new suffix).
type Repository interface {
	// Create inserts p. The caller supplies ID, Slug, and timestamps.
	Create(ctx context.Context, p *Poster) error

	// GetByID returns a poster regardless of moderation status.
	GetByID(ctx context.Context, id string) (*Poster, error)

	// GetBySlug returns a poster regardless of moderation status, with its
	// comment count annotated.
	GetBySlug(ctx context.Context, slug string) (*Poster, error)

	// SlugExists reports whether any poster already holds slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListPublished returns published posters matching filter, comment
	// counts annotated, ordered per filter.Sort.
	ListPublished(ctx context.Context, filter Filter) ([]*Poster, error)

	// PublishedSlugsBySession returns the slugs of a session's published
	// posters in gallery default order, for prev/next navigation.
	PublishedSlugsBySession(ctx context.Context, sessionID string) ([]string, error)

	// ListAll returns a page of posters in every moderation state, newest
	// first, with comment and view counts annotated, plus the total count.
	ListAll(ctx context.Context, params pagination.Params) ([]*Poster, int, error)

	// SetStatus atomically applies a moderation transition and returns the
	// updated row. PublishedAt is stamped inside the same statement when the
	// target status is PUBLISHED, and left untouched otherwise.
	SetStatus(ctx context.Context, id string, status Status) (*Poster, error)

	// Delete removes a poster; dependent comments and views cascade.
	Delete(ctx context.Context, id string) error

	// RecordView appends a view record.
	RecordView(ctx context.Context, v *View) error
}

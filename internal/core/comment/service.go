// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package comment

import (
	"context"
	"time"

	"github.com/uabcampos/fac-virtual-posters/internal/core/poster"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/validate"
	"github.com/uabcampos/fac-virtual-posters/pkg/slice"
	"github.com/uabcampos/fac-virtual-posters/pkg/uuidv7"
)

// defaultRecentLimit bounds the dashboard's recent-comments feed when the
// client does not ask for a specific size.
const defaultRecentLimit = 20

// # Service Layer

// PosterSource is the narrow slice of the poster repository the conversation
// panel needs: existence checks and the scholar roster for attribution.
type PosterSource interface {
	GetByID(ctx context.Context, id string) (*poster.Poster, error)
}

// Service orchestrates the conversation panel: comment intake, thread
// assembly, likes, and moderation.
type Service struct {
	repo    Repository
	posters PosterSource
}

// NewService constructs a [Service] with its repository and poster source.
func NewService(repo Repository, posters PosterSource) *Service {
	return &Service{repo: repo, posters: posters}
}

// # Comment Intake

// CreateInput is the public comment payload. AuthorName is optional; visitors
// may post without identifying themselves, with or without the explicit
// anonymous flag.
type CreateInput struct {
	ParentID    *string `json:"parent_id"`
	AuthorName  *string `json:"author_name"`
	AuthorRole  *string `json:"author_role"`
	IsAnonymous bool    `json:"is_anonymous"`
	Type        string  `json:"type"`
	Content     string  `json:"content"`
}

/*
Create validates and persists a new comment on a poster.

Description: Beyond field validation, two structural invariants are enforced
here rather than in the schema. A reply's parent must live on the same
poster, and the parent must itself be top-level, capping thread depth at one
level. Violations are validation errors, not conflicts, because they can only
arise from a malformed client.

Parameters:
  - context: context.Context
  - posterID: string (Path parameter, owner of the conversation)
  - input: CreateInput (untrusted public payload)

Returns:
  - *Comment: The persisted comment
  - error: Validation errors, or NotFound for missing poster/parent
*/
func (service *Service) Create(context context.Context, posterID string, input CreateInput) (*Comment, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldPosterID, posterID).UUID(FieldPosterID, posterID)
	if input.AuthorName != nil {
		validator.MaxLen(FieldAuthorName, *input.AuthorName, 120)
	}
	validator.Required(FieldType, input.Type).OneOf(FieldType, input.Type,
		string(TypeQuestion),
		string(TypeIdea),
		string(TypeFeedback),
	)
	validator.Required(FieldContent, input.Content).MaxLen(FieldContent, input.Content, MaxContentLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Poster existence gate
	if _, err := service.posters.GetByID(context, posterID); err != nil {
		return nil, err
	}

	// Structural thread invariants
	if input.ParentID != nil {
		parent, err := service.repo.GetByID(context, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PosterID != posterID {
			return nil, apperr.ValidationError("parent comment belongs to a different poster",
				apperr.FieldError{Field: FieldParentID, Message: "must reference a comment on the same poster"})
		}
		if parent.ParentID != nil {
			return nil, apperr.ValidationError("replies cannot be nested",
				apperr.FieldError{Field: FieldParentID, Message: "must reference a top-level comment"})
		}
	}

	c := &Comment{
		ID:          uuidv7.New(),
		PosterID:    posterID,
		ParentID:    input.ParentID,
		AuthorName:  input.AuthorName,
		AuthorRole:  input.AuthorRole,
		IsAnonymous: input.IsAnonymous,
		Type:        Type(input.Type),
		Content:     input.Content,
		CreatedAt:   time.Now().UTC(),
	}

	// Persistence via Repository
	if err := service.repo.Create(context, c); err != nil {
		return nil, err
	}

	return c, nil
}

// # Thread Assembly

/*
List returns a poster's conversation as assembled threads.

Description: The repository hands back one flat, chronologically ordered,
visible-only slice. Assembly groups replies under their parents (already
oldest-first from the query ordering), then emits top-level threads newest
first. Replies whose parent was hidden have no thread to land in and are
dropped, so hiding a parent hides its whole subtree. Scholar attribution is
resolved against the poster's primary scholar during the same pass.

Parameters:
  - context: context.Context
  - posterID: string

Returns:
  - []*Thread: Top-level threads, newest first, replies oldest first
  - error: apperr.NotFound if the poster does not exist
*/
func (service *Service) List(context context.Context, posterID string) ([]*Thread, error) {

	// The poster supplies the scholar roster for attribution
	p, err := service.posters.GetByID(context, posterID)
	if err != nil {
		return nil, err
	}
	primary := p.PrimaryScholar()

	comments, err := service.repo.ListVisibleByPoster(context, posterID)
	if err != nil {
		return nil, err
	}

	// Group replies by parent; input order is already oldest-first
	replies := make(map[string][]*Reply)
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		replies[*c.ParentID] = append(replies[*c.ParentID], &Reply{
			Comment:     c,
			IsScholar:   isScholar(c, primary),
			DisplayName: displayName(c, primary),
		})
	}

	// Top level flips to newest-first for display
	tops := slice.Filter(comments, func(c *Comment) bool { return c.ParentID == nil })
	threads := make([]*Thread, 0, len(tops))
	for i := len(tops) - 1; i >= 0; i-- {
		c := tops[i]
		thread := &Thread{
			Comment:     c,
			IsScholar:   isScholar(c, primary),
			DisplayName: displayName(c, primary),
			Replies:     replies[c.ID],
		}
		if thread.Replies == nil {
			thread.Replies = []*Reply{}
		}
		threads = append(threads, thread)
	}

	return threads, nil
}

// # Interactions

/*
Like adds one anonymous like to a comment. The increment is a single atomic
statement in the repository; there is no per-visitor deduplication.
*/
func (service *Service) Like(context context.Context, id string) (*Comment, error) {
	return service.repo.Like(context, id)
}

// # Moderation

/*
SetHidden hides or restores a comment. Hiding a top-level comment removes its
entire thread from the public conversation without deleting anything.
*/
func (service *Service) SetHidden(context context.Context, id string, hidden bool) (*Comment, error) {
	return service.repo.SetHidden(context, id, hidden)
}

/*
Delete permanently removes a comment and its direct replies.
*/
func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

/*
Recent returns the newest comments across every poster for the moderation
dashboard. A non-positive limit falls back to the default feed size.
*/
func (service *Service) Recent(context context.Context, limit int) ([]*Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultRecentLimit
	}
	return service.repo.Recent(context, limit)
}

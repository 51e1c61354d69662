// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package session

import (
	"context"
	"time"

	"github.com/uabcampos/fac-virtual-posters/internal/core/poster"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/dberr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/validate"
	"github.com/uabcampos/fac-virtual-posters/pkg/slug"
	"github.com/uabcampos/fac-virtual-posters/pkg/uuidv7"
)

const maxSlugAttempts = 50

// # Service Layer

// PosterLister is the slice of the poster repository the session page needs
// to hydrate its gallery.
type PosterLister interface {
	ListPublished(ctx context.Context, filter poster.Filter) ([]*poster.Poster, error)
}

// Service orchestrates session lifecycle and the public session page.
type Service struct {
	repo    Repository
	posters PosterLister
}

// NewService constructs a [Service].
func NewService(repo Repository, posters PosterLister) *Service {
	return &Service{repo: repo, posters: posters}
}

// Detail is a session hydrated with its published posters for the public
// session page.
type Detail struct {
	*Session
	Posters []*poster.Poster `json:"posters"`
}

// # Public Surface

/*
GetBySlug resolves the public session page.

Description: Draft sessions are withheld entirely; the public cannot tell a
draft apart from a session that does not exist. Live and archived sessions
return their published posters in gallery default order.

Returns:
  - *Detail: Session with its published posters
  - error: apperr.NotFound for missing or draft sessions
*/
func (service *Service) GetBySlug(context context.Context, s string) (*Detail, error) {

	sess, err := service.repo.GetBySlug(context, s)
	if err != nil {
		return nil, err
	}

	// Drafts are indistinguishable from absent sessions
	if sess.Status == StatusDraft {
		return nil, apperr.NotFound("session")
	}

	posters, err := service.posters.ListPublished(context, poster.Filter{
		SessionID: sess.ID,
		Sort:      poster.SortRecentlyActive,
	})
	if err != nil {
		return nil, err
	}
	if posters == nil {
		posters = []*poster.Poster{}
	}

	return &Detail{Session: sess, Posters: posters}, nil
}

// # Administration

// CreateInput is the admin payload for opening a new session.
type CreateInput struct {
	Name    string     `json:"name"`
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

/*
Create opens a new session in the DRAFT state.

Description: Slugs are derived from the name with the same probe-and-retry
collision handling used for poster submissions; the unique index stays the
final arbiter under concurrency.
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Session, error) {

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &Session{
		ID:        uuidv7.New(),
		Name:      input.Name,
		Status:    StatusDraft,
		StartAt:   input.StartAt,
		EndAt:     input.EndAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Slug resolution with collision retry
	base := slug.From(sess.Name)
	suffix := 0
	candidate := base

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		for {
			exists, err := service.repo.SlugExists(context, candidate)
			if err != nil {
				return nil, err
			}
			if !exists {
				break
			}
			suffix++
			candidate = slug.WithSuffix(base, suffix)
		}

		sess.Slug = candidate
		err := service.repo.Create(context, sess)
		if err == nil {
			return sess, nil
		}
		if !dberr.IsUniqueViolation(err) {
			return nil, err
		}

		suffix++
		candidate = slug.WithSuffix(base, suffix)
	}

	return nil, apperr.Conflict("could not allocate a unique slug")
}

/*
SetStatus moves a session through its lifecycle. Unknown target states are
rejected before touching the database.
*/
func (service *Service) SetStatus(context context.Context, id, status string) (*Session, error) {

	target := Status(status)
	if !target.Valid() {
		return nil, apperr.InvalidStatus(status)
	}

	return service.repo.SetStatus(context, id, target)
}

/*
List returns every session for the admin dashboard, upcoming first.
*/
func (service *Service) List(context context.Context) ([]*Session, error) {
	return service.repo.List(context)
}

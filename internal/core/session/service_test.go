// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uabcampos/fac-virtual-posters/internal/core/poster"
	"github.com/uabcampos/fac-virtual-posters/internal/core/session"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
)

// fakeSessionRepository is an in-memory [session.Repository].
type fakeSessionRepository struct {
	sessions []*session.Session
}

func (f *fakeSessionRepository) Create(_ context.Context, s *session.Session) error {
	clone := *s
	f.sessions = append(f.sessions, &clone)
	return nil
}

func (f *fakeSessionRepository) GetByID(_ context.Context, id string) (*session.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperr.NotFound("session")
}

func (f *fakeSessionRepository) GetBySlug(_ context.Context, slug string) (*session.Session, error) {
	for _, s := range f.sessions {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, apperr.NotFound("session")
}

func (f *fakeSessionRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, s := range f.sessions {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSessionRepository) List(_ context.Context) ([]*session.Session, error) {
	return f.sessions, nil
}

func (f *fakeSessionRepository) SetStatus(_ context.Context, id string, status session.Status) (*session.Session, error) {
	s, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return s, nil
}

// fakePosterLister records the filter it was asked for.
type fakePosterLister struct {
	posters    []*poster.Poster
	lastFilter poster.Filter
}

func (f *fakePosterLister) ListPublished(_ context.Context, filter poster.Filter) ([]*poster.Poster, error) {
	f.lastFilter = filter
	return f.posters, nil
}

/*
TestCreate verifies new sessions start as drafts with name-derived slugs, and
that name collisions pick up a suffix.
*/
func TestCreate(t *testing.T) {
	repo := &fakeSessionRepository{}
	service := session.NewService(repo, &fakePosterLister{})

	first, err := service.Create(context.Background(), session.CreateInput{Name: "Spring Showcase 2026"})
	require.NoError(t, err)
	assert.Equal(t, session.StatusDraft, first.Status)
	assert.Equal(t, "spring-showcase-2026", first.Slug)

	second, err := service.Create(context.Background(), session.CreateInput{Name: "Spring Showcase 2026"})
	require.NoError(t, err)
	assert.Equal(t, "spring-showcase-2026-1", second.Slug)

	_, err = service.Create(context.Background(), session.CreateInput{Name: ""})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestGetBySlug verifies draft withholding and poster hydration.
*/
func TestGetBySlug(t *testing.T) {
	repo := &fakeSessionRepository{}
	lister := &fakePosterLister{}
	service := session.NewService(repo, lister)

	created, err := service.Create(context.Background(), session.CreateInput{Name: "Spring Showcase 2026"})
	require.NoError(t, err)

	// Drafts are not publicly addressable
	_, err = service.GetBySlug(context.Background(), created.Slug)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	_, err = service.SetStatus(context.Background(), created.ID, "LIVE")
	require.NoError(t, err)

	detail, err := service.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)

	// The gallery query is scoped to the session, default sort
	assert.Equal(t, created.ID, lister.lastFilter.SessionID)
	assert.Equal(t, poster.SortRecentlyActive, lister.lastFilter.Sort)

	// No posters yet renders as an empty list, not null
	require.NotNil(t, detail.Posters)
	assert.Empty(t, detail.Posters)

	// Archived sessions remain visible
	_, err = service.SetStatus(context.Background(), created.ID, "ARCHIVED")
	require.NoError(t, err)

	_, err = service.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
}

/*
TestSetStatus verifies the lifecycle enum gate.
*/
func TestSetStatus(t *testing.T) {
	repo := &fakeSessionRepository{}
	service := session.NewService(repo, &fakePosterLister{})

	created, err := service.Create(context.Background(), session.CreateInput{Name: "Spring Showcase 2026"})
	require.NoError(t, err)

	live, err := service.SetStatus(context.Background(), created.ID, "LIVE")
	require.NoError(t, err)
	assert.Equal(t, session.StatusLive, live.Status)

	_, err = service.SetStatus(context.Background(), created.ID, "CLOSED")
	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", apperr.As(err).Code)

	_, err = service.SetStatus(context.Background(), "0190163d-0000-7000-8000-000000000000", "LIVE")
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package poster_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uabcampos/fac-virtual-posters/internal/core/poster"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/dberr"
	"github.com/uabcampos/fac-virtual-posters/pkg/pagination"
)

// fakeRepository is an in-memory [poster.Repository] honoring the documented
// store contract, including the publish-timestamp behavior of SetStatus.
type fakeRepository struct {
	posters map[string]*poster.Poster

	// createConflicts simulates a concurrent writer winning the slug race:
	// each listed slug fails exactly once with a unique violation.
	createConflicts map[string]bool

	lastFilter poster.Filter
	views      []*poster.View
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		posters:         make(map[string]*poster.Poster),
		createConflicts: make(map[string]bool),
	}
}

func (f *fakeRepository) Create(_ context.Context, p *poster.Poster) error {
	if f.createConflicts[p.Slug] {
		delete(f.createConflicts, p.Slug)
		return dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "create_poster")
	}
	for _, existing := range f.posters {
		if existing.Slug == p.Slug {
			return dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "create_poster")
		}
	}
	clone := *p
	f.posters[p.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*poster.Poster, error) {
	p, ok := f.posters[id]
	if !ok {
		return nil, apperr.NotFound("poster")
	}
	return p, nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*poster.Poster, error) {
	for _, p := range f.posters {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, apperr.NotFound("poster")
}

func (f *fakeRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range f.posters {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) ListPublished(_ context.Context, filter poster.Filter) ([]*poster.Poster, error) {
	f.lastFilter = filter
	var out []*poster.Poster
	for _, p := range f.posters {
		if p.Status != poster.StatusPublished {
			continue
		}
		if filter.SessionID != "" && p.SessionID != filter.SessionID {
			continue
		}
		if filter.Query != "" && !matchesQuery(p, filter.Query) {
			continue
		}
		if filter.Tag != "" && !containsExact(p.Tags, filter.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// matchesQuery mirrors the store's free-text contract: case-insensitive
// substring on the title, but exact (case-insensitive) membership on the
// scholar, institution, and tag lists.
func matchesQuery(p *poster.Poster, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
		return true
	}
	for _, list := range [][]string{p.ScholarNames, p.Institutions, p.Tags} {
		for _, entry := range list {
			if strings.EqualFold(entry, query) {
				return true
			}
		}
	}
	return false
}

// containsExact mirrors the tag facet, which is case-sensitive.
func containsExact(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func (f *fakeRepository) PublishedSlugsBySession(_ context.Context, sessionID string) ([]string, error) {
	var slugs []string
	for _, p := range f.posters {
		if p.SessionID == sessionID && p.Status == poster.StatusPublished {
			slugs = append(slugs, p.Slug)
		}
	}
	return slugs, nil
}

func (f *fakeRepository) ListAll(_ context.Context, _ pagination.Params) ([]*poster.Poster, int, error) {
	var out []*poster.Poster
	for _, p := range f.posters {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeRepository) SetStatus(_ context.Context, id string, status poster.Status) (*poster.Poster, error) {
	p, ok := f.posters[id]
	if !ok {
		return nil, apperr.NotFound("poster")
	}
	p.Status = status
	if status == poster.StatusPublished {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posters[id]; !ok {
		return apperr.NotFound("poster")
	}
	delete(f.posters, id)
	return nil
}

func (f *fakeRepository) RecordView(_ context.Context, v *poster.View) error {
	f.views = append(f.views, v)
	return nil
}

// validSubmission returns a payload passing every intake rule.
func validSubmission() poster.SubmitInput {
	return poster.SubmitInput{
		SessionID:       "0190163d-8694-7ccc-8000-000000000000",
		Title:           "Example Study",
		ScholarNames:    []string{"Jane Smith"},
		Institutions:    []string{"UAB"},
		WhyThisMatters:  "This work closes a real gap in community care.",
		SummaryProblem:  "Problem statement",
		SummaryAudience: "Community health workers",
		SummaryMethods:  "Mixed methods",
		SummaryFindings: "Promising outcomes",
		SummaryChange:   "Practice change recommendations",
		PosterImageURL:  "https://cdn.example.org/poster.png",
	}
}

/*
TestSubmit_Defaults verifies a valid submission lands in the moderation queue
with generated identity and normalized fields.
*/
func TestSubmit_Defaults(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	p, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, poster.StatusPending, p.Status)
	assert.Equal(t, "example-study", p.Slug)
	assert.NotEmpty(t, p.ID)
	assert.Nil(t, p.PublishedAt)
	assert.False(t, p.CreatedAt.IsZero())

	// Nil optional lists normalize to empty, never null
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

/*
TestSubmit_Validation exercises the intake rules field by field.
*/
func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*poster.SubmitInput)
		badField string
	}{
		{"missing_title", func(in *poster.SubmitInput) { in.Title = "" }, poster.FieldTitle},
		{"short_title", func(in *poster.SubmitInput) { in.Title = "ab" }, poster.FieldTitle},
		{"missing_session", func(in *poster.SubmitInput) { in.SessionID = "" }, poster.FieldSessionID},
		{"malformed_session_id", func(in *poster.SubmitInput) { in.SessionID = "not-a-uuid" }, poster.FieldSessionID},
		{"no_scholars", func(in *poster.SubmitInput) { in.ScholarNames = nil }, poster.FieldScholarNames},
		{"short_motivation", func(in *poster.SubmitInput) { in.WhyThisMatters = "Too brief" }, poster.FieldWhyThisMatters},
		{"bad_image_url", func(in *poster.SubmitInput) { in.PosterImageURL = "/poster.png" }, poster.FieldPosterImageURL},
		{"missing_findings", func(in *poster.SubmitInput) { in.SummaryFindings = "" }, poster.FieldSummaryFindings},
		{"short_problem", func(in *poster.SubmitInput) { in.SummaryProblem = "short" }, poster.FieldSummaryProblem},
		{"short_audience", func(in *poster.SubmitInput) { in.SummaryAudience = "few" }, poster.FieldSummaryAudience},
		{"short_methods", func(in *poster.SubmitInput) { in.SummaryMethods = "brief" }, poster.FieldSummaryMethods},
		{"short_findings", func(in *poster.SubmitInput) { in.SummaryFindings = "tiny" }, poster.FieldSummaryFindings},
		{"short_change", func(in *poster.SubmitInput) { in.SummaryChange = "none" }, poster.FieldSummaryChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := poster.NewService(repo)

			input := validSubmission()
			tt.mutate(&input)

			_, err := service.Submit(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, d := range ae.Details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.badField)
		})
	}
}

/*
TestSubmit_SlugCollision verifies the probe walks past taken slugs.
*/
func TestSubmit_SlugCollision(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	first, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "example-study", first.Slug)

	second, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "example-study-1", second.Slug)

	third, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "example-study-2", third.Slug)
}

/*
TestSubmit_SlugRace verifies that losing the insert race (probe says free,
unique index says taken) retries with the next suffix instead of failing.
*/
func TestSubmit_SlugRace(t *testing.T) {
	repo := newFakeRepository()
	repo.createConflicts["example-study"] = true
	service := poster.NewService(repo)

	p, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, "example-study-1", p.Slug)
}

/*
TestSetStatus covers the moderation state machine: free transitions, the
publish timestamp, and rejection of unknown states.
*/
func TestSetStatus(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	p, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	// Publish stamps the timestamp
	published, err := service.SetStatus(context.Background(), p.ID, "PUBLISHED")
	require.NoError(t, err)
	assert.Equal(t, poster.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	firstPublish := *published.PublishedAt

	// Unpublishing retains the original timestamp
	pending, err := service.SetStatus(context.Background(), p.ID, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, poster.StatusPending, pending.Status)
	require.NotNil(t, pending.PublishedAt)
	assert.Equal(t, firstPublish, *pending.PublishedAt)

	// Unknown status is rejected before persistence
	_, err = service.SetStatus(context.Background(), p.ID, "ARCHIVED")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_STATUS", ae.Code)

	// Missing poster surfaces NotFound
	_, err = service.SetStatus(context.Background(), "0190163d-0000-7000-8000-000000000000", "PUBLISHED")
	require.Error(t, err)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestListPublished_SortFallback verifies unknown sort values quietly become
the recently-active default.
*/
func TestListPublished_SortFallback(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	_, err := service.ListPublished(context.Background(), poster.Filter{Sort: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, poster.SortRecentlyActive, repo.lastFilter.Sort)

	_, err = service.ListPublished(context.Background(), poster.Filter{Sort: poster.SortAZ})
	require.NoError(t, err)
	assert.Equal(t, poster.SortAZ, repo.lastFilter.Sort)
}

/*
TestListPublished_QueryMatching pins the free-text asymmetry: the query term
matches titles by substring but scholar names only by exact (case-insensitive)
membership, and the tag facet stays case-sensitive.
*/
func TestListPublished_QueryMatching(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	submit := func(title string, scholars, tags []string) *poster.Poster {
		input := validSubmission()
		input.Title = title
		input.ScholarNames = scholars
		input.Tags = tags
		p, err := service.Submit(context.Background(), input)
		require.NoError(t, err)
		_, err = service.SetStatus(context.Background(), p.ID, "PUBLISHED")
		require.NoError(t, err)
		return p
	}

	byTitle := submit("Community Health in Caldwell County", []string{"Robert Okafor"}, nil)
	byScholar := submit("Transit Access Outcomes", []string{"Caldwell"}, nil)
	partialScholar := submit("Nutrition Study", []string{"Jennifer Caldwell"}, []string{"Equity"})

	slugs := func(filter poster.Filter) []string {
		results, err := service.ListPublished(context.Background(), filter)
		require.NoError(t, err)
		out := make([]string, 0, len(results))
		for _, p := range results {
			out = append(out, p.Slug)
		}
		return out
	}

	// Title substring and exact scholar name hit; "Jennifer Caldwell" does not
	// match a search for just "Caldwell".
	matched := slugs(poster.Filter{Query: "Caldwell"})
	assert.Contains(t, matched, byTitle.Slug)
	assert.Contains(t, matched, byScholar.Slug)
	assert.NotContains(t, matched, partialScholar.Slug)

	// Full scholar name matches regardless of case
	matched = slugs(poster.Filter{Query: "jennifer caldwell"})
	assert.Contains(t, matched, partialScholar.Slug)
	assert.NotContains(t, matched, byScholar.Slug)

	// The tag facet is exact and case-sensitive
	assert.Equal(t, []string{partialScholar.Slug}, slugs(poster.Filter{Tag: "Equity"}))
	assert.Empty(t, slugs(poster.Filter{Tag: "equity"}))
}

/*
TestGetPublishedBySlug covers public addressability and prev/next navigation.
*/
func TestGetPublishedBySlug(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	// Pending posters are not publicly addressable
	pending, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = service.GetPublishedBySlug(context.Background(), pending.Slug)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	// Publish three posters in one session, then walk the navigation ring
	ids := make([]string, 0, 3)
	ids = append(ids, pending.ID)
	for i := 0; i < 2; i++ {
		p, err := service.Submit(context.Background(), validSubmission())
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	for _, id := range ids {
		_, err := service.SetStatus(context.Background(), id, "PUBLISHED")
		require.NoError(t, err)
	}

	detail, err := service.GetPublishedBySlug(context.Background(), "example-study-1")
	require.NoError(t, err)
	assert.Equal(t, "example-study-1", detail.Slug)
	require.NotNil(t, detail.PrevSlug)
	require.NotNil(t, detail.NextSlug)
	assert.NotEqual(t, detail.Slug, *detail.PrevSlug)
	assert.NotEqual(t, detail.Slug, *detail.NextSlug)
}

/*
TestRecordView verifies views append with fresh anonymous hashes and missing
posters 404 cleanly.
*/
func TestRecordView(t *testing.T) {
	repo := newFakeRepository()
	service := poster.NewService(repo)

	p, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	require.NoError(t, service.RecordView(context.Background(), p.ID))
	require.NoError(t, service.RecordView(context.Background(), p.ID))

	// Every view is its own record with a distinct anonymous hash
	require.Len(t, repo.views, 2)
	assert.NotEqual(t, repo.views[0].ViewerHash, repo.views[1].ViewerHash)

	err = service.RecordView(context.Background(), "0190163d-0000-7000-8000-000000000000")
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

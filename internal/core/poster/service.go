// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package poster

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/dberr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/validate"
	"github.com/uabcampos/fac-virtual-posters/pkg/pagination"
	"github.com/uabcampos/fac-virtual-posters/pkg/slug"
	"github.com/uabcampos/fac-virtual-posters/pkg/uuidv7"
)

// maxSlugAttempts bounds the collision retry loop so a pathological title can
// never spin the intake path forever.
const maxSlugAttempts = 50

// # Service Layer

// Service orchestrates submission intake, moderation, and the public gallery.
type Service struct {
	repo Repository
}

// NewService constructs a [Service] with its repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Submission Intake

// SubmitInput is the public submission payload.
type SubmitInput struct {
	SessionID       string   `json:"session_id"`
	Title           string   `json:"title"`
	ScholarNames    []string `json:"scholar_names"`
	Institutions    []string `json:"institutions"`
	Tags            []string `json:"tags"`
	WhyThisMatters  string   `json:"why_this_matters"`
	SummaryProblem  string   `json:"summary_problem"`
	SummaryAudience string   `json:"summary_audience"`
	SummaryMethods  string   `json:"summary_methods"`
	SummaryFindings string   `json:"summary_findings"`
	SummaryChange   string   `json:"summary_change"`
	WelcomeMessage  *string  `json:"welcome_message"`
	FeedbackPrompt  *string  `json:"feedback_prompt"`
	PosterImageURL  string   `json:"poster_image_url"`
	PosterPDFURL    *string  `json:"poster_pdf_url"`
	ScholarPhotoURL *string  `json:"scholar_photo_url"`
}

/*
Submit validates a public submission, resolves a unique slug, and persists
the poster in the PENDING state.

Description: Slug uniqueness is handled in two layers. First an existence
probe walks "base", "base-1", "base-2", ... until a free slug is found. The
probe is advisory only: two concurrent submissions with the same title can
both see the same free slug, so the insert's unique-violation error re-enters
the loop and the loser retries with the next suffix. The model's unique index
remains the single source of truth.

Parameters:
  - context: context.Context
  - input: SubmitInput (untrusted public payload)

Returns:
  - *Poster: The persisted submission, always StatusPending
  - error: Validation errors, or Internal after exhausting slug attempts
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Poster, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldSessionID, input.SessionID).UUID(FieldSessionID, input.SessionID)
	validator.Required(FieldTitle, input.Title).MinLen(FieldTitle, input.Title, 3).MaxLen(FieldTitle, input.Title, 300)
	validator.NonEmptyList(FieldScholarNames, input.ScholarNames)
	validator.NonEmptyList(FieldInstitutions, input.Institutions)
	validator.Required(FieldWhyThisMatters, input.WhyThisMatters).MinLen(FieldWhyThisMatters, input.WhyThisMatters, 10)
	validator.Required(FieldSummaryProblem, input.SummaryProblem).MinLen(FieldSummaryProblem, input.SummaryProblem, 10)
	validator.Required(FieldSummaryAudience, input.SummaryAudience).MinLen(FieldSummaryAudience, input.SummaryAudience, 10)
	validator.Required(FieldSummaryMethods, input.SummaryMethods).MinLen(FieldSummaryMethods, input.SummaryMethods, 10)
	validator.Required(FieldSummaryFindings, input.SummaryFindings).MinLen(FieldSummaryFindings, input.SummaryFindings, 10)
	validator.Required(FieldSummaryChange, input.SummaryChange).MinLen(FieldSummaryChange, input.SummaryChange, 10)
	validator.Required(FieldPosterImageURL, input.PosterImageURL).URL(FieldPosterImageURL, input.PosterImageURL)
	validator.OptionalURL(FieldPosterPDFURL, input.PosterPDFURL)
	validator.OptionalURL(FieldScholarPhotoURL, input.ScholarPhotoURL)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Entity assembly; id and timestamps are authored here, not in SQL
	now := time.Now().UTC()
	p := &Poster{
		ID:              uuidv7.New(),
		SessionID:       input.SessionID,
		Title:           input.Title,
		ScholarNames:    input.ScholarNames,
		Institutions:    orEmpty(input.Institutions),
		Tags:            orEmpty(input.Tags),
		WhyThisMatters:  input.WhyThisMatters,
		SummaryProblem:  input.SummaryProblem,
		SummaryAudience: input.SummaryAudience,
		SummaryMethods:  input.SummaryMethods,
		SummaryFindings: input.SummaryFindings,
		SummaryChange:   input.SummaryChange,
		WelcomeMessage:  input.WelcomeMessage,
		FeedbackPrompt:  input.FeedbackPrompt,
		PosterImageURL:  input.PosterImageURL,
		PosterPDFURL:    input.PosterPDFURL,
		ScholarPhotoURL: input.ScholarPhotoURL,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Slug resolution with collision retry
	base := slug.From(p.Title)
	suffix := 0
	candidate := base

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {

		// Advisory existence probe; skips suffixes already taken
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

		// Insert; a racing writer may still win this slug
		p.Slug = candidate
		err := service.repo.Create(context, p)
		if err == nil {
			return p, nil
		}
		if !dberr.IsUniqueViolation(err) {
			return nil, err
		}

		// Lost the race; advance the suffix and try again
		suffix++
		candidate = slug.WithSuffix(base, suffix)
	}

	return nil, apperr.Conflict("could not allocate a unique slug")
}

// orEmpty normalizes a nil list to an empty one so text[] columns never
// round-trip as NULL.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// # Moderation

/*
SetStatus applies a moderation transition.

Description: Any status may transition to any other. Unknown target states
are rejected with an INVALID_STATUS error before touching the database. The
publish timestamp handling lives in the repository's atomic UPDATE.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - status: string (raw value from the request)

Returns:
  - *Poster: The poster after the transition
  - error: InvalidStatus, NotFound, or persistence errors
*/
func (service *Service) SetStatus(context context.Context, id, status string) (*Poster, error) {

	// Enum gate ahead of any SQL
	target := Status(status)
	if !target.Valid() {
		return nil, apperr.InvalidStatus(status)
	}

	return service.repo.SetStatus(context, id, target)
}

/*
Delete permanently removes a poster and, via cascade, its comments and views.
*/
func (service *Service) Delete(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

/*
ListAll returns the moderation dashboard page: every poster regardless of
status, newest first, with comment and view counts.
*/
func (service *Service) ListAll(context context.Context, params pagination.Params) ([]*Poster, int, error) {
	return service.repo.ListAll(context, params)
}

// # Public Gallery

/*
ListPublished returns gallery posters matching the filter.

Description: Unrecognized sort values are not an error; they silently fall
back to the recently-active default, mirroring how the gallery UI treats a
stale bookmark with an old sort parameter.
*/
func (service *Service) ListPublished(context context.Context, filter Filter) ([]*Poster, error) {

	// Normalize unknown sorts to the default
	switch filter.Sort {
	case SortRecentlyActive, SortMostCommented, SortAZ:
	default:
		filter.Sort = SortRecentlyActive
	}

	return service.repo.ListPublished(context, filter)
}

/*
GetPublishedBySlug resolves a poster detail page.

Description: Only published posters are addressable publicly; pending and
rejected posters return NotFound rather than Forbidden so their existence is
not leaked. Prev/next navigation walks the session's published posters in
gallery default order and wraps around at the ends.

Returns:
  - *Detail: Poster plus navigation slugs
  - error: apperr.NotFound for missing or unpublished posters
*/
func (service *Service) GetPublishedBySlug(context context.Context, s string) (*Detail, error) {

	p, err := service.repo.GetBySlug(context, s)
	if err != nil {
		return nil, err
	}

	// Unpublished posters are indistinguishable from absent ones
	if p.Status != StatusPublished {
		return nil, apperr.NotFound("poster")
	}

	detail := &Detail{Poster: p}

	// Session-scoped neighbor resolution
	slugs, err := service.repo.PublishedSlugsBySession(context, p.SessionID)
	if err != nil {
		return nil, err
	}
	if len(slugs) > 1 {
		for i, candidate := range slugs {
			if candidate != p.Slug {
				continue
			}
			prev := slugs[(i-1+len(slugs))%len(slugs)]
			next := slugs[(i+1)%len(slugs)]
			detail.PrevSlug = &prev
			detail.NextSlug = &next
			break
		}
	}

	return detail, nil
}

// # View Tracking

/*
RecordView appends an anonymous view record for a poster.

Description: The viewer hash is an opaque random token generated per request;
there is no fingerprinting and no deduplication. A missing poster surfaces as
NotFound via the existence check so the public endpoint returns a clean 404
instead of a foreign-key violation.
*/
func (service *Service) RecordView(context context.Context, posterID string) error {

	// Existence gate keeps FK violations out of the public surface
	if _, err := service.repo.GetByID(context, posterID); err != nil {
		return err
	}

	view := &View{
		ID:         uuidv7.New(),
		PosterID:   posterID,
		ViewerHash: uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}

	return service.repo.RecordView(context, view)
}

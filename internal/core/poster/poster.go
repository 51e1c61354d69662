// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

/*
Package poster implements the poster lifecycle: submission intake, the
moderation state machine, the published-gallery query layer, and view tracking.

Architecture:

  - Service: Orchestrates intake validation, slug collision resolution, and
    moderation transitions.
  - Repository: Abstracted interface backed by PostgreSQL.
  - Handler: Thin REST delivery layer (public gallery + admin moderation).
*/
package poster

import "time"

// # Lifecycle

// Status is the moderation state of a poster.
//
// All pairwise transitions are legal: moderators may unpublish a published
// poster or restore a rejected one at any time.
type Status string

const (
	// StatusPending is the initial state of every submission.
	StatusPending Status = "PENDING"

	// StatusPublished makes a poster visible in the public gallery.
	StatusPublished Status = "PUBLISHED"

	// StatusRejected hides a poster from the gallery without deleting it.
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is a member of the moderation enum.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// # Entities

// Poster is a submitted research artifact owned by exactly one session.
type Poster struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`

	// ScholarNames is ordered; the first entry is the primary scholar used
	// for reply attribution in the conversation panel.
	ScholarNames []string `json:"scholar_names"`
	Institutions []string `json:"institutions"`
	Tags         []string `json:"tags"`

	// Fixed summary fields shown on the poster detail page.
	WhyThisMatters  string `json:"why_this_matters"`
	SummaryProblem  string `json:"summary_problem"`
	SummaryAudience string `json:"summary_audience"`
	SummaryMethods  string `json:"summary_methods"`
	SummaryFindings string `json:"summary_findings"`
	SummaryChange   string `json:"summary_change"`

	WelcomeMessage *string `json:"welcome_message"`
	FeedbackPrompt *string `json:"feedback_prompt"`

	PosterImageURL  string  `json:"poster_image_url"`
	PosterPDFURL    *string `json:"poster_pdf_url"`
	ScholarPhotoURL *string `json:"scholar_photo_url"`

	Status Status `json:"status"`

	// PublishedAt is set when the poster transitions to PUBLISHED.
	// It is intentionally NOT cleared on unpublish; readers must check Status.
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CommentCount is a computed annotation, populated by list queries.
	CommentCount int `json:"comment_count"`

	// ViewCount is a computed annotation, populated on the admin dashboard.
	ViewCount int `json:"view_count,omitempty"`
}

// PrimaryScholar returns the first scholar name, or "" for malformed rows.
func (p *Poster) PrimaryScholar() string {
	if len(p.ScholarNames) == 0 {
		return ""
	}
	return p.ScholarNames[0]
}

// Detail is a published poster hydrated for the detail page, including
// prev/next navigation slugs within its session.
type Detail struct {
	*Poster
	PrevSlug *string `json:"prev_slug"`
	NextSlug *string `json:"next_slug"`
}

// View is an immutable, append-only record of a poster visit.
//
// There is no per-visitor deduplication: every page load produces one record.
type View struct {
	ID         string    `json:"id"`
	PosterID   string    `json:"poster_id"`
	ViewerHash string    `json:"viewer_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

// # Field Identifiers

// Field names used in validation errors, matching the JSON contract.
const (
	FieldSessionID       = "session_id"
	FieldTitle           = "title"
	FieldScholarNames    = "scholar_names"
	FieldInstitutions    = "institutions"
	FieldTags            = "tags"
	FieldWhyThisMatters  = "why_this_matters"
	FieldSummaryProblem  = "summary_problem"
	FieldSummaryAudience = "summary_audience"
	FieldSummaryMethods  = "summary_methods"
	FieldSummaryFindings = "summary_findings"
	FieldSummaryChange   = "summary_change"
	FieldPosterImageURL  = "poster_image_url"
	FieldPosterPDFURL    = "poster_pdf_url"
	FieldScholarPhotoURL = "scholar_photo_url"
	FieldStatus          = "status"
)

// # Query Layer

// Sort enumerates the gallery orderings.
type Sort string

const (
	// SortRecentlyActive orders by publish time, newest first (default).
	SortRecentlyActive Sort = "recently_active"

	// SortMostCommented orders by comment count, highest first.
	SortMostCommented Sort = "most_commented"

	// SortAZ orders by title, ascending.
	SortAZ Sort = "az"
)

// Filter is a typed description of a gallery query.
//
// Using a dedicated struct (rather than an open-ended map) means invalid
// filter combinations fail at compile time instead of silently returning
// empty result sets.
type Filter struct {
	// SessionID restricts results to a single session when non-empty.
	SessionID string

	// Query matches case-insensitively: substring against the title,
	// exact membership against scholar names, institutions, and tags.
	Query string

	// Tag restricts results to posters whose tag set contains it exactly.
	Tag string

	// Sort selects the ordering; unknown values fall back to SortRecentlyActive.
	Sort Sort
}

// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package poster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/database/schema"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/dberr"
	"github.com/uabcampos/fac-virtual-posters/pkg/pagination"
)

// # PostgreSQL Repository

// posterRepository implements the [Repository] interface using pgx.
type posterRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed poster store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &posterRepository{pool: pool}
}

// posterColumns is the canonical select list shared by every single-row query.
const posterColumns = `
	p.id, p.sessionid, p.title, p.slug, p.scholarnames, p.institutions, p.tags,
	p.whythismatters, p.summaryproblem, p.summaryaudience, p.summarymethods,
	p.summaryfindings, p.summarychange, p.welcomemessage, p.feedbackprompt,
	p.posterimageurl, p.posterpdfurl, p.scholarphotourl,
	p.status, p.publishedat, p.createdat, p.updatedat
`

// scanPoster maps one row onto a Poster in posterColumns order, plus any
// trailing annotation targets (comment count, view count, window total).
func scanPoster(row pgx.Row, extra ...any) (*Poster, error) {
	p := &Poster{}
	dest := []any{
		&p.ID, &p.SessionID, &p.Title, &p.Slug, &p.ScholarNames, &p.Institutions, &p.Tags,
		&p.WhyThisMatters, &p.SummaryProblem, &p.SummaryAudience, &p.SummaryMethods,
		&p.SummaryFindings, &p.SummaryChange, &p.WelcomeMessage, &p.FeedbackPrompt,
		&p.PosterImageURL, &p.PosterPDFURL, &p.ScholarPhotoURL,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

/*
Create persists a new submission.

Description: A plain single-row insert. The unique index on the slug column is
the authoritative collision detector; concurrent submissions racing past the
service's existence probe surface here as a unique violation, which is wrapped
into a Conflict so the intake service can retry with the next suffix.

Parameters:
  - context: context.Context
  - p: *Poster (fully populated by the service, including ID and Slug)

Returns:
  - error: apperr Conflict on slug collision, Internal on other failures
*/
func (repository *posterRepository) Create(context context.Context, p *Poster) error {

	// Insertion blueprint covering every authored column
	query := `
		INSERT INTO core.poster (
			id, sessionid, title, slug, scholarnames, institutions, tags,
			whythismatters, summaryproblem, summaryaudience, summarymethods,
			summaryfindings, summarychange, welcomemessage, feedbackprompt,
			posterimageurl, posterpdfurl, scholarphotourl, status,
			createdat, updatedat
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
	`

	// Stream parameters into the pool
	_, err := repository.pool.Exec(context, query,
		p.ID, p.SessionID, p.Title, p.Slug, p.ScholarNames, p.Institutions, p.Tags,
		p.WhyThisMatters, p.SummaryProblem, p.SummaryAudience, p.SummaryMethods,
		p.SummaryFindings, p.SummaryChange, p.WelcomeMessage, p.FeedbackPrompt,
		p.PosterImageURL, p.PosterPDFURL, p.ScholarPhotoURL, p.Status,
		p.CreatedAt, p.UpdatedAt,
	)

	// Unique violations must stay distinguishable for the retry loop
	return dberr.Wrap(err, "create_poster")
}

/*
GetByID retrieves a poster by primary key regardless of moderation status.

Returns:
  - *Poster: The hydrated entity
  - error: apperr.NotFound if the row does not exist
*/
func (repository *posterRepository) GetByID(context context.Context, id string) (*Poster, error) {

	// Single-row lookup
	query := fmt.Sprintf(`SELECT %s FROM core.poster p WHERE p.id = $1`, posterColumns)

	p, err := scanPoster(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("poster")
		}
		return nil, fmt.Errorf("postgres: failed to find poster by id: %w", err)
	}

	return p, nil
}

/*
GetBySlug retrieves a poster by slug regardless of moderation status.

Description: The comment count is resolved in the same round-trip via a
correlated sub-query, so the detail page never issues a second query.

Returns:
  - *Poster: The hydrated entity with CommentCount populated
  - error: apperr.NotFound on absent rows
*/
func (repository *posterRepository) GetBySlug(context context.Context, slug string) (*Poster, error) {

	// Lookup with comment count annotation
	query := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM social.comment c WHERE c.posterid = p.id) AS comment_count
		FROM core.poster p
		WHERE p.slug = $1
	`, posterColumns)

	var commentCount int
	p, err := scanPoster(repository.pool.QueryRow(context, query, slug), &commentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("poster")
		}
		return nil, fmt.Errorf("postgres: failed to find poster by slug: %w", err)
	}

	p.CommentCount = commentCount
	return p, nil
}

/*
SlugExists reports whether any poster row already owns the given slug.
*/
func (repository *posterRepository) SlugExists(context context.Context, slug string) (bool, error) {

	// Existence probe
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CorePoster.Table, schema.CorePoster.Slug)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres: failed to probe slug: %w", err)
	}

	return exists, nil
}

/*
ListPublished returns published posters matching the gallery filter.

Description: Builds the WHERE clause dynamically from the typed Filter. Text
search intentionally mixes two matching modes in one predicate: the title is
matched as a case-insensitive substring, while scholar names, institutions,
and tags are matched as case-insensitive exact members of their arrays. Tag
facet filtering is a separate, case-sensitive exact membership test. Comment
counts ride along via a correlated sub-query so sorting by activity needs no
application-side pass.

Parameters:
  - context: context.Context
  - filter: Filter (session scope, free-text query, tag facet, sort)

Returns:
  - []*Poster: Hydrated posters with CommentCount populated
  - error: Database execution errors
*/
func (repository *posterRepository) ListPublished(context context.Context, filter Filter) ([]*Poster, error) {

	query, args := buildGalleryQuery(filter)

	// Query execution
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list posters: %w", err)
	}
	defer rows.Close()

	// Row iteration and entity hydration
	var posters []*Poster
	for rows.Next() {
		var commentCount int
		p, err := scanPoster(rows, &commentCount)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan poster: %w", err)
		}
		p.CommentCount = commentCount
		posters = append(posters, p)
	}

	return posters, nil
}

// buildGalleryQuery assembles the gallery SELECT from the typed Filter.
//
// The free-text predicate deliberately mixes two matching modes: the title is
// a case-insensitive substring match, while scholar names, institutions, and
// tags only match as exact (case-insensitive) array members. The tag facet is
// a separate, case-sensitive membership test.
func buildGalleryQuery(filter Filter) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM social.comment c WHERE c.posterid = p.id) AS comment_count
		FROM core.poster p
		WHERE p.status = 'PUBLISHED'
	`, posterColumns))

	// Session scope
	if filter.SessionID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.sessionid = $%d", argID))
		args = append(args, filter.SessionID)
		argID++
	}

	// Free-text query: substring on title, exact membership on the list fields
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(`
			AND (
				p.title ILIKE '%%' || $%d || '%%'
				OR EXISTS (SELECT 1 FROM unnest(p.scholarnames) s WHERE LOWER(s) = LOWER($%d))
				OR EXISTS (SELECT 1 FROM unnest(p.institutions) i WHERE LOWER(i) = LOWER($%d))
				OR EXISTS (SELECT 1 FROM unnest(p.tags) t WHERE LOWER(t) = LOWER($%d))
			)`, argID, argID, argID, argID))
		args = append(args, filter.Query)
		argID++
	}

	// Tag facet: exact, case-sensitive membership
	if filter.Tag != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND $%d = ANY(p.tags)", argID))
		args = append(args, filter.Tag)
		argID++
	}

	// Apply Sorting Logic
	orderBy := "p.publishedat DESC NULLS LAST" // recently_active default
	switch filter.Sort {
	case SortMostCommented:
		orderBy = "comment_count DESC"
	case SortAZ:
		orderBy = "p.title ASC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, p.id DESC", orderBy))

	return queryBuilder.String(), args
}

/*
PublishedSlugsBySession returns a session's published poster slugs in the
gallery's default order, for prev/next navigation on the detail page.
*/
func (repository *posterRepository) PublishedSlugsBySession(context context.Context, sessionID string) ([]string, error) {

	// Slim projection; ordering must match the gallery default
	query := `
		SELECT slug
		FROM core.poster
		WHERE sessionid = $1 AND status = 'PUBLISHED'
		ORDER BY publishedat DESC NULLS LAST, id DESC
	`

	rows, err := repository.pool.Query(context, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list session slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}

	return slugs, nil
}

/*
ListAll returns a page of posters in every moderation state for the
moderation dashboard.

Description: Uses COUNT(*) OVER() to retrieve the total record count without
a second query, and correlated sub-queries to annotate comment and view
counts per row.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*Poster: Hydrated posters, newest first
  - int: Total record count
  - error: Database execution errors
*/
func (repository *posterRepository) ListAll(context context.Context, params pagination.Params) ([]*Poster, int, error) {

	// Window function keeps the count in the same round-trip
	query := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM social.comment c WHERE c.posterid = p.id) AS comment_count,
			(SELECT COUNT(*) FROM core.posterview v WHERE v.posterid = p.id) AS view_count,
			COUNT(*) OVER() AS total_count
		FROM core.poster p
		ORDER BY p.createdat DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`, posterColumns)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list all posters: %w", err)
	}
	defer rows.Close()

	// Hydration loop
	var posters []*Poster
	var totalCount int
	for rows.Next() {
		var commentCount, viewCount int
		p, err := scanPoster(rows, &commentCount, &viewCount, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan poster: %w", err)
		}
		p.CommentCount = commentCount
		p.ViewCount = viewCount
		posters = append(posters, p)
	}

	return posters, totalCount, nil
}

/*
SetStatus applies a moderation transition in a single atomic statement.

Description: The publish timestamp is resolved inside the UPDATE itself: it
is stamped with now() when the target status is PUBLISHED and left untouched
for every other transition. Folding the conditional into one statement means
two concurrent moderators can never interleave a read-modify-write on the
same row.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - status: Status (validated by the service before reaching here)

Returns:
  - *Poster: The row after the transition
  - error: apperr.NotFound if the poster does not exist
*/
func (repository *posterRepository) SetStatus(context context.Context, id string, status Status) (*Poster, error) {

	// Conditional timestamp folded into the UPDATE
	query := fmt.Sprintf(`
		UPDATE core.poster p
		SET status = $2,
			publishedat = CASE WHEN $2 = 'PUBLISHED' THEN NOW() ELSE p.publishedat END,
			updatedat = NOW()
		WHERE p.id = $1
		RETURNING %s
	`, posterColumns)

	p, err := scanPoster(repository.pool.QueryRow(context, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("poster")
		}
		return nil, fmt.Errorf("postgres: failed to set poster status: %w", err)
	}

	return p, nil
}

/*
Delete removes a poster row; comments and views follow via ON DELETE CASCADE.

Returns:
  - error: apperr.NotFound if the target row does not exist
*/
func (repository *posterRepository) Delete(context context.Context, id string) error {

	// Hard delete; the schema cascades dependents
	query := `DELETE FROM core.poster WHERE id = $1`

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete poster: %w", err)
	}

	// Affected row verification
	if result.RowsAffected() == 0 {
		return apperr.NotFound("poster")
	}

	return nil
}

/*
RecordView appends one immutable view record. There is no conflict handling
because view rows are never deduplicated.
*/
func (repository *posterRepository) RecordView(context context.Context, v *View) error {

	// Append-only insert
	t := schema.CorePosterView
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
	`, t.Table, t.ID, t.PosterID, t.ViewerHash, t.CreatedAt)

	_, err := repository.pool.Exec(context, query, v.ID, v.PosterID, v.ViewerHash, v.CreatedAt)

	return dberr.Wrap(err, "record_view")
}

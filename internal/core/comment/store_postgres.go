// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/database/schema"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/dberr"
)

// # PostgreSQL Repository

// commentRepository implements the [Repository] interface using pgx.
type commentRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed comment store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &commentRepository{pool: pool}
}

// commentColumns is the canonical select list shared by every query.
const commentColumns = `
	c.id, c.posterid, c.parentid, c.authorname, c.authorrole, c.isanonymous,
	c.commenttype, c.content, c.likecount, c.ishidden, c.createdat
`

// scanComment maps one row onto a Comment in commentColumns order, plus any
// trailing annotation targets.
func scanComment(row pgx.Row, extra ...any) (*Comment, error) {
	c := &Comment{}
	dest := []any{
		&c.ID, &c.PosterID, &c.ParentID, &c.AuthorName, &c.AuthorRole, &c.IsAnonymous,
		&c.Type, &c.Content, &c.LikeCount, &c.IsHidden, &c.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Create persists a new comment. Foreign-key integrity (poster and parent
existence) is pre-checked by the service, so violations here are internal.
*/
func (repository *commentRepository) Create(context context.Context, c *Comment) error {

	// Insertion blueprint
	query := `
		INSERT INTO social.comment (
			id, posterid, parentid, authorname, authorrole, isanonymous,
			commenttype, content, ishidden, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := repository.pool.Exec(context, query,
		c.ID, c.PosterID, c.ParentID, c.AuthorName, c.AuthorRole, c.IsAnonymous,
		c.Type, c.Content, c.IsHidden, c.CreatedAt,
	)

	return dberr.Wrap(err, "create_comment")
}

/*
GetByID retrieves a single comment regardless of visibility.

Returns:
  - *Comment: The hydrated entity
  - error: apperr.NotFound on absent rows
*/
func (repository *commentRepository) GetByID(context context.Context, id string) (*Comment, error) {

	// Single-row lookup
	query := fmt.Sprintf(`SELECT %s FROM social.comment c WHERE c.id = $1`, commentColumns)

	c, err := scanComment(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("postgres: failed to find comment by id: %w", err)
	}

	return c, nil
}

/*
ListVisibleByPoster returns every non-hidden comment on a poster, oldest
first.

Description: One flat query feeds the service's thread assembly; the ASC
ordering means replies arrive already in display order, and the service only
reverses the top level. Hidden comments are filtered here so a hidden parent
with visible replies produces orphans that the assembly pass then drops,
which is exactly the moderation intent.
*/
func (repository *commentRepository) ListVisibleByPoster(context context.Context, posterID string) ([]*Comment, error) {

	// Flat visible set in chronological order
	query := fmt.Sprintf(`
		SELECT %s
		FROM social.comment c
		WHERE c.posterid = $1 AND c.ishidden = FALSE
		ORDER BY c.createdat ASC, c.id ASC
	`, commentColumns)

	rows, err := repository.pool.Query(context, query, posterID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list comments: %w", err)
	}
	defer rows.Close()

	// Hydration loop
	var comments []*Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, nil
}

/*
Like increments the like counter atomically.

Description: The increment happens inside the UPDATE itself rather than as a
read-modify-write, so concurrent likes can never lose counts.

Returns:
  - *Comment: The comment with its new counter value
  - error: apperr.NotFound if the comment does not exist
*/
func (repository *commentRepository) Like(context context.Context, id string) (*Comment, error) {

	// Single-statement counter bump
	query := fmt.Sprintf(`
		UPDATE social.comment c
		SET likecount = likecount + 1
		WHERE c.id = $1
		RETURNING %s
	`, commentColumns)

	c, err := scanComment(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("postgres: failed to like comment: %w", err)
	}

	return c, nil
}

/*
SetHidden flips a comment's visibility flag.

Returns:
  - *Comment: The updated comment
  - error: apperr.NotFound if the comment does not exist
*/
func (repository *commentRepository) SetHidden(context context.Context, id string, hidden bool) (*Comment, error) {

	// Visibility toggle
	query := fmt.Sprintf(`
		UPDATE social.comment c
		SET ishidden = $2
		WHERE c.id = $1
		RETURNING %s
	`, commentColumns)

	c, err := scanComment(repository.pool.QueryRow(context, query, id, hidden))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("postgres: failed to set comment visibility: %w", err)
	}

	return c, nil
}

/*
Delete removes a comment together with its direct replies.

Description: Both deletes run inside one transaction so a crash between them
can never leave replies pointing at a missing parent. Reply rows go first to
respect the self-referencing foreign key.

Returns:
  - error: apperr.NotFound if the target comment does not exist
*/
func (repository *commentRepository) Delete(context context.Context, id string) error {

	// Transactional boundary for the two-phase delete
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin delete transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Replies first
	t := schema.SocialComment
	deleteReplies := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ParentID)
	if _, err := transaction.Exec(context, deleteReplies, id); err != nil {
		return fmt.Errorf("postgres: failed to delete replies: %w", err)
	}

	// Then the parent
	deleteParent := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)
	result, err := transaction.Exec(context, deleteParent, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete comment: %w", err)
	}

	// Affected row verification
	if result.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}

	// Commit the pair
	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit delete transaction: %w", err)
	}

	return nil
}

/*
Recent returns the latest comments across all posters for the moderation
dashboard, newest first, with the owning poster's title annotated.
*/
func (repository *commentRepository) Recent(context context.Context, limit int) ([]*Comment, error) {

	// Join resolves the dashboard's poster title column
	query := fmt.Sprintf(`
		SELECT %s, p.title
		FROM social.comment c
		JOIN core.poster p ON p.id = c.posterid
		ORDER BY c.createdat DESC, c.id DESC
		LIMIT $1
	`, commentColumns)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list recent comments: %w", err)
	}
	defer rows.Close()

	// Hydration loop with title annotation
	var comments []*Comment
	for rows.Next() {
		var title string
		c, err := scanComment(rows, &title)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan recent comment: %w", err)
		}
		c.PosterTitle = title
		comments = append(comments, c)
	}

	return comments, nil
}

// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package session

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

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func sessionColumns() string {
	t := schema.CoreSession
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Slug, t.Status, t.StartAt, t.EndAt, t.CreatedAt, t.UpdatedAt)
}

func scanSession(row pgx.Row) (*Session, error) {
	s := &Session{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Status, &s.StartAt, &s.EndAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) Create(context context.Context, s *Session) error {
	t := schema.CoreSession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.Table, t.ID, t.Name, t.Slug, t.Status, t.StartAt, t.EndAt, t.CreatedAt, t.UpdatedAt)

	_, err := repository.db.Exec(context, query,
		s.ID, s.Name, s.Slug, s.Status, s.StartAt, s.EndAt, s.CreatedAt, s.UpdatedAt)

	return dberr.Wrap(err, "create_session")
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		sessionColumns(), schema.CoreSession.Table, schema.CoreSession.ID)

	s, err := scanSession(repository.db.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("session")
		}
		return nil, dberr.Wrap(err, "get_session_by_id")
	}
	return s, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		sessionColumns(), schema.CoreSession.Table, schema.CoreSession.Slug)

	s, err := scanSession(repository.db.QueryRow(context, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("session")
		}
		return nil, dberr.Wrap(err, "get_session_by_slug")
	}
	return s, nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreSession.Table, schema.CoreSession.Slug)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "session_slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC NULLS LAST, %s DESC`,
		sessionColumns(), schema.CoreSession.Table, schema.CoreSession.StartAt, schema.CoreSession.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sessions")
	}
	defer rows.Close()

	sessions := make([]*Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_session")
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (repository *PostgresRepository) SetStatus(context context.Context, id string, status Status) (*Session, error) {
	t := schema.CoreSession
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1
		RETURNING %s
	`, t.Table, t.Status, t.UpdatedAt, t.ID, sessionColumns())

	s, err := scanSession(repository.db.QueryRow(context, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("session")
		}
		return nil, dberr.Wrap(err, "set_session_status")
	}
	return s, nil
}

// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth

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

// PostgresAdminRepository implements [AdminRepository] using pgx.
type PostgresAdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository constructs a PostgreSQL backed admin store.
func NewAdminRepository(db *pgxpool.Pool) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func adminColumns() string {
	t := schema.UsersAdmin
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.PasswordHash, t.DisplayName, t.Role, t.CreatedAt)
}

func scanAdmin(row pgx.Row) (*Admin, error) {
	a := &Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.DisplayName, &a.Role, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresAdminRepository) FindByID(context context.Context, id string) (*Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		adminColumns(), schema.UsersAdmin.Table, schema.UsersAdmin.ID)

	admin, err := scanAdmin(repository.db.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("admin")
		}
		return nil, dberr.Wrap(err, "find_admin_by_id")
	}
	return admin, nil
}

func (repository *PostgresAdminRepository) FindByUsername(context context.Context, username string) (*Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		adminColumns(), schema.UsersAdmin.Table, schema.UsersAdmin.Username)

	admin, err := scanAdmin(repository.db.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("admin")
		}
		return nil, dberr.Wrap(err, "find_admin_by_username")
	}
	return admin, nil
}

func (repository *PostgresAdminRepository) Create(context context.Context, admin *Admin) error {
	t := schema.UsersAdmin
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.Table, t.ID, t.Username, t.PasswordHash, t.DisplayName, t.Role, t.CreatedAt)

	_, err := repository.db.Exec(context, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.DisplayName, admin.Role, admin.CreatedAt)

	return dberr.Wrap(err, "create_admin")
}

// Package repository provides PostgreSQL and MySQL persistence for roles and
// role assignments.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	roleDomain "github.com/allisson/identity/internal/role/domain"
)

// PostgreSQLRoleRepository implements Role persistence for PostgreSQL.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new Role into the PostgreSQL database.
func (r *PostgreSQLRoleRepository) Create(ctx context.Context, role *roleDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO roles (id, name, description, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, role.ID, role.Name, role.Description, role.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Update modifies an existing Role.
func (r *PostgreSQLRoleRepository) Update(ctx context.Context, role *roleDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE roles SET name = $1, description = $2 WHERE id = $3`

	_, err := querier.ExecContext(ctx, query, role.Name, role.Description, role.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update role")
	}

	return nil
}

// Get retrieves a Role by ID. Returns ErrRoleNotFound if it doesn't exist.
func (r *PostgreSQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM roles WHERE id = $1`

	var role roleDomain.Role

	err := querier.QueryRowContext(ctx, query, roleID).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, roleDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}

	return &role, nil
}

// GetByName retrieves a Role by its globally unique name.
func (r *PostgreSQLRoleRepository) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM roles WHERE name = $1`

	var role roleDomain.Role

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&role.ID,
		&role.Name,
		&role.Description,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, roleDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by name")
	}

	return &role, nil
}

// GetMany retrieves the roles matching the given IDs. Missing IDs are simply
// absent from the result.
func (r *PostgreSQLRoleRepository) GetMany(ctx context.Context, roleIDs []uuid.UUID) ([]*roleDomain.Role, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM roles WHERE id = ANY($1)`

	rows, err := querier.QueryContext(ctx, query, uuidArray(roleIDs))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get roles")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// List retrieves roles ordered by creation time with offset/limit pagination.
func (r *PostgreSQLRoleRepository) List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at
			  FROM roles ORDER BY created_at ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// Delete removes a Role row. Returns ErrRoleNotFound if no row matched.
func (r *PostgreSQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM roles WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, roleID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete role")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return roleDomain.ErrRoleNotFound
	}

	return nil
}

// scanRoles reads all role rows from the result set.
func scanRoles(rows *sql.Rows) ([]*roleDomain.Role, error) {
	var roles []*roleDomain.Role
	for rows.Next() {
		var role roleDomain.Role
		if err := rows.Scan(
			&role.ID,
			&role.Name,
			&role.Description,
			&role.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}

// NewPostgreSQLRoleRepository creates a new PostgreSQL Role repository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}

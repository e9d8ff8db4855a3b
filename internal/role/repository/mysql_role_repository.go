package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	roleDomain "github.com/allisson/identity/internal/role/domain"
)

// MySQLRoleRepository implements Role persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new Role into the MySQL database.
func (r *MySQLRoleRepository) Create(ctx context.Context, role *roleDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO roles (id, name, description, created_at) VALUES (?, ?, ?, ?)`

	id, err := role.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	_, err = querier.ExecContext(ctx, query, id, role.Name, role.Description, role.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Update modifies an existing Role.
func (r *MySQLRoleRepository) Update(ctx context.Context, role *roleDomain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE roles SET name = ?, description = ? WHERE id = ?`

	id, err := role.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	_, err = querier.ExecContext(ctx, query, role.Name, role.Description, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update role")
	}

	return nil
}

// Get retrieves a Role by ID. Returns ErrRoleNotFound if it doesn't exist.
func (r *MySQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM roles WHERE id = ?`

	id, err := roleID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal role id")
	}

	return scanMySQLRole(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a Role by its globally unique name.
func (r *MySQLRoleRepository) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM roles WHERE name = ?`

	return scanMySQLRole(querier.QueryRowContext(ctx, query, name))
}

// GetMany retrieves the roles matching the given IDs. Missing IDs are simply
// absent from the result.
func (r *MySQLRoleRepository) GetMany(ctx context.Context, roleIDs []uuid.UUID) ([]*roleDomain.Role, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, 0, len(roleIDs))
	args := make([]any, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		id, err := roleID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal role id")
		}
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}

	query := `SELECT id, name, description, created_at FROM roles WHERE id IN (` +
		strings.Join(placeholders, ", ") + `)`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get roles")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// List retrieves roles ordered by creation time with offset/limit pagination.
func (r *MySQLRoleRepository) List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, created_at
			  FROM roles ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	return scanRoles(rows)
}

// Delete removes a Role row. Returns ErrRoleNotFound if no row matched.
func (r *MySQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM roles WHERE id = ?`

	id, err := roleID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// scanMySQLRole scans a single role row.
func scanMySQLRole(row *sql.Row) (*roleDomain.Role, error) {
	var role roleDomain.Role

	err := row.Scan(
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

// NewMySQLRoleRepository creates a new MySQL Role repository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}

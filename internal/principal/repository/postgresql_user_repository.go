// Package repository provides PostgreSQL and MySQL persistence for principals.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the PostgreSQL database.
func (u *PostgreSQLUserRepository) Create(ctx context.Context, user *principalDomain.User) error {
	querier := database.GetTx(ctx, u.db)

	query := `INSERT INTO users (id, name, description, enabled, domain_id, default_project_id, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Description,
		user.Enabled,
		user.DomainID,
		user.DefaultProjectID,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update modifies an existing User. The owning domain and password hash are
// not part of the update; password changes go through UpdatePassword.
func (u *PostgreSQLUserRepository) Update(ctx context.Context, user *principalDomain.User) error {
	querier := database.GetTx(ctx, u.db)

	query := `UPDATE users
			  SET name = $1,
			  	  description = $2,
				  enabled = $3,
				  default_project_id = $4
			  WHERE id = $5`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Name,
		user.Description,
		user.Enabled,
		user.DefaultProjectID,
		user.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	return nil
}

// UpdatePassword replaces a user's stored password hash.
func (u *PostgreSQLUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, u.db)

	query := `UPDATE users SET password_hash = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user password")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return principalDomain.ErrUserNotFound
	}

	return nil
}

// Get retrieves a User by ID. Returns ErrUserNotFound if it doesn't exist.
func (u *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users WHERE id = $1`

	var user principalDomain.User

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Description,
		&user.Enabled,
		&user.DomainID,
		&user.DefaultProjectID,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, principalDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

// GetByName retrieves a User by name within its owning domain.
func (u *PostgreSQLUserRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users WHERE domain_id = $1 AND name = $2`

	var user principalDomain.User

	err := querier.QueryRowContext(ctx, query, domainID, name).Scan(
		&user.ID,
		&user.Name,
		&user.Description,
		&user.Enabled,
		&user.DomainID,
		&user.DefaultProjectID,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, principalDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by name")
	}

	return &user, nil
}

// List retrieves users ordered by creation time with offset/limit pagination.
func (u *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users ORDER BY created_at ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	return scanUsers(rows)
}

// CountByDomain returns the number of users owned by the given domain.
// Used by the domain-delete in-use check.
func (u *PostgreSQLUserRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT COUNT(*) FROM users WHERE domain_id = $1`

	var count int
	if err := querier.QueryRowContext(ctx, query, domainID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count users by domain")
	}

	return count, nil
}

// CountByDefaultProject returns the number of users naming the project as
// their default. Used by the project-delete in-use check.
func (u *PostgreSQLUserRepository) CountByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT COUNT(*) FROM users WHERE default_project_id = $1`

	var count int
	if err := querier.QueryRowContext(ctx, query, projectID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count users by default project")
	}

	return count, nil
}

// Delete removes a User row. Returns ErrUserNotFound if no row matched.
func (u *PostgreSQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, u.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return principalDomain.ErrUserNotFound
	}

	return nil
}

// scanUsers reads all user rows from the result set.
func scanUsers(rows *sql.Rows) ([]*principalDomain.User, error) {
	var users []*principalDomain.User
	for rows.Next() {
		var user principalDomain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Description,
			&user.Enabled,
			&user.DomainID,
			&user.DefaultProjectID,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

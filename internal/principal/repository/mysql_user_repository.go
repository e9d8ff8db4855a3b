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

// MySQLUserRepository implements User persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the MySQL database using BINARY(16) for UUIDs.
func (u *MySQLUserRepository) Create(ctx context.Context, user *principalDomain.User) error {
	querier := database.GetTx(ctx, u.db)

	query := `INSERT INTO users (id, name, description, enabled, domain_id, default_project_id, password_hash, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	domainID, err := user.DomainID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	defaultProjectID, err := marshalNullableUUID(user.DefaultProjectID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal default project id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Name,
		user.Description,
		user.Enabled,
		domainID,
		defaultProjectID,
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
func (u *MySQLUserRepository) Update(ctx context.Context, user *principalDomain.User) error {
	querier := database.GetTx(ctx, u.db)

	query := `UPDATE users
			  SET name = ?,
			  	  description = ?,
				  enabled = ?,
				  default_project_id = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	defaultProjectID, err := marshalNullableUUID(user.DefaultProjectID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal default project id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		user.Name,
		user.Description,
		user.Enabled,
		defaultProjectID,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	return nil
}

// UpdatePassword replaces a user's stored password hash.
func (u *MySQLUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, u.db)

	query := `UPDATE users SET password_hash = ? WHERE id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, passwordHash, id)
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
func (u *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users WHERE id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	return scanMySQLUser(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a User by name within its owning domain.
func (u *MySQLUserRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users WHERE domain_id = ? AND name = ?`

	domID, err := domainID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal domain id")
	}

	return scanMySQLUser(querier.QueryRowContext(ctx, query, domID, name))
}

// List retrieves users ordered by creation time with offset/limit pagination.
func (u *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT id, name, description, enabled, domain_id, default_project_id, password_hash, created_at
			  FROM users ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	return scanMySQLUsers(rows)
}

// CountByDomain returns the number of users owned by the given domain.
func (u *MySQLUserRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT COUNT(*) FROM users WHERE domain_id = ?`

	id, err := domainID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal domain id")
	}

	var count int
	if err := querier.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count users by domain")
	}

	return count, nil
}

// CountByDefaultProject returns the number of users naming the project as
// their default. Used by the project-delete in-use check.
func (u *MySQLUserRepository) CountByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, u.db)

	query := `SELECT COUNT(*) FROM users WHERE default_project_id = ?`

	id, err := projectID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal project id")
	}

	var count int
	if err := querier.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count users by default project")
	}

	return count, nil
}

// Delete removes a User row. Returns ErrUserNotFound if no row matched.
func (u *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, u.db)

	query := `DELETE FROM users WHERE id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// scanMySQLUser scans a single user row handling the nullable default project id.
func scanMySQLUser(row *sql.Row) (*principalDomain.User, error) {
	var user principalDomain.User
	var defaultProjectID uuid.NullUUID

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Description,
		&user.Enabled,
		&user.DomainID,
		&defaultProjectID,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, principalDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if defaultProjectID.Valid {
		user.DefaultProjectID = &defaultProjectID.UUID
	}

	return &user, nil
}

// scanMySQLUsers reads all user rows from the result set.
func scanMySQLUsers(rows *sql.Rows) ([]*principalDomain.User, error) {
	var users []*principalDomain.User
	for rows.Next() {
		var user principalDomain.User
		var defaultProjectID uuid.NullUUID
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Description,
			&user.Enabled,
			&user.DomainID,
			&defaultProjectID,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if defaultProjectID.Valid {
			user.DefaultProjectID = &defaultProjectID.UUID
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

// marshalNullableUUID marshals an optional UUID to BINARY(16) bytes or nil.
func marshalNullableUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	return id.MarshalBinary()
}

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

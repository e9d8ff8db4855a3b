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

// PostgreSQLGroupRepository implements Group persistence for PostgreSQL,
// including the group membership edges.
type PostgreSQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new Group into the PostgreSQL database.
func (g *PostgreSQLGroupRepository) Create(ctx context.Context, group *principalDomain.Group) error {
	querier := database.GetTx(ctx, g.db)

	query := `INSERT INTO groups (id, name, description, domain_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		group.ID,
		group.Name,
		group.Description,
		group.DomainID,
		group.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// Update modifies an existing Group. The owning domain is immutable.
func (g *PostgreSQLGroupRepository) Update(ctx context.Context, group *principalDomain.Group) error {
	querier := database.GetTx(ctx, g.db)

	query := `UPDATE groups SET name = $1, description = $2 WHERE id = $3`

	_, err := querier.ExecContext(ctx, query, group.Name, group.Description, group.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update group")
	}

	return nil
}

// Get retrieves a Group by ID. Returns ErrGroupNotFound if it doesn't exist.
func (g *PostgreSQLGroupRepository) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT id, name, description, domain_id, created_at FROM groups WHERE id = $1`

	var group principalDomain.Group

	err := querier.QueryRowContext(ctx, query, groupID).Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.DomainID,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, principalDomain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group")
	}

	return &group, nil
}

// GetByName retrieves a Group by name within its owning domain.
func (g *PostgreSQLGroupRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT id, name, description, domain_id, created_at
			  FROM groups WHERE domain_id = $1 AND name = $2`

	var group principalDomain.Group

	err := querier.QueryRowContext(ctx, query, domainID, name).Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.DomainID,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, principalDomain.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get group by name")
	}

	return &group, nil
}

// List retrieves groups ordered by creation time with offset/limit pagination.
func (g *PostgreSQLGroupRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT id, name, description, domain_id, created_at
			  FROM groups ORDER BY created_at ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	defer rows.Close()

	return scanGroups(rows)
}

// CountByDomain returns the number of groups owned by the given domain.
func (g *PostgreSQLGroupRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT COUNT(*) FROM groups WHERE domain_id = $1`

	var count int
	if err := querier.QueryRowContext(ctx, query, domainID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count groups by domain")
	}

	return count, nil
}

// Delete removes a Group row. Returns ErrGroupNotFound if no row matched.
func (g *PostgreSQLGroupRepository) Delete(ctx context.Context, groupID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM groups WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, groupID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return principalDomain.ErrGroupNotFound
	}

	return nil
}

// AddMember adds a user to a group. Re-adding an existing member is a no-op.
func (g *PostgreSQLGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `INSERT INTO group_members (group_id, user_id, created_at)
			  VALUES ($1, $2, NOW())
			  ON CONFLICT (group_id, user_id) DO NOTHING`

	_, err := querier.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to add group member")
	}
	return nil
}

// RemoveMember removes a user from a group. Removing a non-member is a no-op.
func (g *PostgreSQLGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`

	_, err := querier.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove group member")
	}
	return nil
}

// ListMembers retrieves the users belonging to a group.
func (g *PostgreSQLGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT u.id, u.name, u.description, u.enabled, u.domain_id, u.default_project_id, u.password_hash, u.created_at
			  FROM users u
			  JOIN group_members gm ON gm.user_id = u.id
			  WHERE gm.group_id = $1
			  ORDER BY u.created_at ASC`

	rows, err := querier.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list group members")
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListGroupsForUser retrieves the groups a user belongs to. The resolver
// expands these into the principal set used for assignment lookup.
func (g *PostgreSQLGroupRepository) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT g.id, g.name, g.description, g.domain_id, g.created_at
			  FROM groups g
			  JOIN group_members gm ON gm.group_id = g.id
			  WHERE gm.user_id = $1
			  ORDER BY g.created_at ASC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups for user")
	}
	defer rows.Close()

	return scanGroups(rows)
}

// DeleteMembersByGroup removes all membership edges of a group. Used by the
// group-delete cascade.
func (g *PostgreSQLGroupRepository) DeleteMembersByGroup(ctx context.Context, groupID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE group_id = $1`

	_, err := querier.ExecContext(ctx, query, groupID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group members by group")
	}
	return nil
}

// DeleteMembersByUser removes all membership edges of a user. Used by the
// user-delete cascade.
func (g *PostgreSQLGroupRepository) DeleteMembersByUser(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE user_id = $1`

	_, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group members by user")
	}
	return nil
}

// scanGroups reads all group rows from the result set.
func scanGroups(rows *sql.Rows) ([]*principalDomain.Group, error) {
	var groups []*principalDomain.Group
	for rows.Next() {
		var group principalDomain.Group
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Description,
			&group.DomainID,
			&group.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan group")
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate groups")
	}
	return groups, nil
}

// NewPostgreSQLGroupRepository creates a new PostgreSQL Group repository.
func NewPostgreSQLGroupRepository(db *sql.DB) *PostgreSQLGroupRepository {
	return &PostgreSQLGroupRepository{db: db}
}

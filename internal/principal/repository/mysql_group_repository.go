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

// MySQLGroupRepository implements Group persistence for MySQL, including the
// group membership edges. Uses BINARY(16) for UUIDs.
type MySQLGroupRepository struct {
	db *sql.DB
}

// Create inserts a new Group into the MySQL database.
func (g *MySQLGroupRepository) Create(ctx context.Context, group *principalDomain.Group) error {
	querier := database.GetTx(ctx, g.db)

	// MySQL 8 reserves GROUPS, so the table name needs quoting.
	query := "INSERT INTO `groups` (id, name, description, domain_id, created_at) VALUES (?, ?, ?, ?, ?)"

	id, err := group.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	domainID, err := group.DomainID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		group.Name,
		group.Description,
		domainID,
		group.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create group")
	}
	return nil
}

// Update modifies an existing Group. The owning domain is immutable.
func (g *MySQLGroupRepository) Update(ctx context.Context, group *principalDomain.Group) error {
	querier := database.GetTx(ctx, g.db)

	query := "UPDATE `groups` SET name = ?, description = ? WHERE id = ?"

	id, err := group.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	_, err = querier.ExecContext(ctx, query, group.Name, group.Description, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update group")
	}

	return nil
}

// Get retrieves a Group by ID. Returns ErrGroupNotFound if it doesn't exist.
func (g *MySQLGroupRepository) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := "SELECT id, name, description, domain_id, created_at FROM `groups` WHERE id = ?"

	id, err := groupID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal group id")
	}

	return scanMySQLGroup(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a Group by name within its owning domain.
func (g *MySQLGroupRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := "SELECT id, name, description, domain_id, created_at FROM `groups` WHERE domain_id = ? AND name = ?"

	domID, err := domainID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal domain id")
	}

	return scanMySQLGroup(querier.QueryRowContext(ctx, query, domID, name))
}

// List retrieves groups ordered by creation time with offset/limit pagination.
func (g *MySQLGroupRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := "SELECT id, name, description, domain_id, created_at FROM `groups` ORDER BY created_at ASC LIMIT ? OFFSET ?"

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups")
	}
	defer rows.Close()

	return scanMySQLGroups(rows)
}

// CountByDomain returns the number of groups owned by the given domain.
func (g *MySQLGroupRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, g.db)

	query := "SELECT COUNT(*) FROM `groups` WHERE domain_id = ?"

	id, err := domainID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal domain id")
	}

	var count int
	if err := querier.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count groups by domain")
	}

	return count, nil
}

// Delete removes a Group row. Returns ErrGroupNotFound if no row matched.
func (g *MySQLGroupRepository) Delete(ctx context.Context, groupID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := "DELETE FROM `groups` WHERE id = ?"

	id, err := groupID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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
func (g *MySQLGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `INSERT IGNORE INTO group_members (group_id, user_id, created_at)
			  VALUES (?, ?, NOW())`

	gID, err := groupID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	uID, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, gID, uID)
	if err != nil {
		return apperrors.Wrap(err, "failed to add group member")
	}
	return nil
}

// RemoveMember removes a user from a group. Removing a non-member is a no-op.
func (g *MySQLGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE group_id = ? AND user_id = ?`

	gID, err := groupID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	uID, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, gID, uID)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove group member")
	}
	return nil
}

// ListMembers retrieves the users belonging to a group.
func (g *MySQLGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error) {
	querier := database.GetTx(ctx, g.db)

	query := `SELECT u.id, u.name, u.description, u.enabled, u.domain_id, u.default_project_id, u.password_hash, u.created_at
			  FROM users u
			  JOIN group_members gm ON gm.user_id = u.id
			  WHERE gm.group_id = ?
			  ORDER BY u.created_at ASC`

	id, err := groupID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal group id")
	}

	rows, err := querier.QueryContext(ctx, query, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list group members")
	}
	defer rows.Close()

	return scanMySQLUsers(rows)
}

// ListGroupsForUser retrieves the groups a user belongs to.
func (g *MySQLGroupRepository) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	querier := database.GetTx(ctx, g.db)

	query := "SELECT g.id, g.name, g.description, g.domain_id, g.created_at " +
		"FROM `groups` g JOIN group_members gm ON gm.group_id = g.id " +
		"WHERE gm.user_id = ? ORDER BY g.created_at ASC"

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	rows, err := querier.QueryContext(ctx, query, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list groups for user")
	}
	defer rows.Close()

	return scanMySQLGroups(rows)
}

// DeleteMembersByGroup removes all membership edges of a group.
func (g *MySQLGroupRepository) DeleteMembersByGroup(ctx context.Context, groupID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE group_id = ?`

	id, err := groupID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal group id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group members by group")
	}
	return nil
}

// DeleteMembersByUser removes all membership edges of a user.
func (g *MySQLGroupRepository) DeleteMembersByUser(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, g.db)

	query := `DELETE FROM group_members WHERE user_id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete group members by user")
	}
	return nil
}

// scanMySQLGroup scans a single group row.
func scanMySQLGroup(row *sql.Row) (*principalDomain.Group, error) {
	var group principalDomain.Group

	err := row.Scan(
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

// scanMySQLGroups reads all group rows from the result set.
func scanMySQLGroups(rows *sql.Rows) ([]*principalDomain.Group, error) {
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

// NewMySQLGroupRepository creates a new MySQL Group repository.
func NewMySQLGroupRepository(db *sql.DB) *MySQLGroupRepository {
	return &MySQLGroupRepository{db: db}
}

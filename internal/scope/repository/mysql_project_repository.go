package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// MySQLProjectRepository implements Project persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLProjectRepository struct {
	db *sql.DB
}

// Create inserts a new Project into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLProjectRepository) Create(ctx context.Context, project *scopeDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO projects (id, name, description, enabled, domain_id, parent_id, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := project.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal project id")
	}

	domainID, err := project.DomainID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	parentID, err := marshalNullableUUID(project.ParentID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal parent id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		project.Name,
		project.Description,
		project.Enabled,
		domainID,
		parentID,
		project.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// Update modifies an existing Project in the MySQL database. The owning
// domain and parent pointer are immutable and not part of the update.
func (m *MySQLProjectRepository) Update(ctx context.Context, project *scopeDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE projects
			  SET name = ?,
			  	  description = ?,
				  enabled = ?
			  WHERE id = ?`

	id, err := project.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal project id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		project.Name,
		project.Description,
		project.Enabled,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update project")
	}

	return nil
}

// Get retrieves a Project by ID. Returns ErrProjectNotFound if it doesn't exist.
func (m *MySQLProjectRepository) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects WHERE id = ?`

	id, err := projectID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal project id")
	}

	return scanMySQLProject(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a Project by name within its owning domain.
func (m *MySQLProjectRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects WHERE domain_id = ? AND name = ?`

	domID, err := domainID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal domain id")
	}

	return scanMySQLProject(querier.QueryRowContext(ctx, query, domID, name))
}

// List retrieves projects ordered by creation time with offset/limit pagination.
func (m *MySQLProjectRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	var projects []*scopeDomain.Project
	for rows.Next() {
		var project scopeDomain.Project
		var parentID uuid.NullUUID
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Enabled,
			&project.DomainID,
			&parentID,
			&project.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
		}
		if parentID.Valid {
			project.ParentID = &parentID.UUID
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate projects")
	}

	return projects, nil
}

// CountByDomain returns the number of projects owned by the given domain.
func (m *MySQLProjectRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM projects WHERE domain_id = ?`

	id, err := domainID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal domain id")
	}

	var count int
	if err := querier.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count projects by domain")
	}

	return count, nil
}

// CountChildren returns the number of projects whose parent is the given project.
func (m *MySQLProjectRepository) CountChildren(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM projects WHERE parent_id = ?`

	id, err := projectID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal project id")
	}

	var count int
	if err := querier.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count child projects")
	}

	return count, nil
}

// Delete removes a Project row. Returns ErrProjectNotFound if no row matched.
func (m *MySQLProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM projects WHERE id = ?`

	id, err := projectID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal project id")
	}

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete project")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return scopeDomain.ErrProjectNotFound
	}

	return nil
}

// scanMySQLProject scans a single project row handling the nullable parent id.
func scanMySQLProject(row *sql.Row) (*scopeDomain.Project, error) {
	var project scopeDomain.Project
	var parentID uuid.NullUUID

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Enabled,
		&project.DomainID,
		&parentID,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scopeDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}

	if parentID.Valid {
		project.ParentID = &parentID.UUID
	}

	return &project, nil
}

// marshalNullableUUID marshals an optional UUID to BINARY(16) bytes or nil.
func marshalNullableUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	return id.MarshalBinary()
}

// NewMySQLProjectRepository creates a new MySQL Project repository.
func NewMySQLProjectRepository(db *sql.DB) *MySQLProjectRepository {
	return &MySQLProjectRepository{db: db}
}

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

// PostgreSQLProjectRepository implements Project persistence for PostgreSQL.
type PostgreSQLProjectRepository struct {
	db *sql.DB
}

// Create inserts a new Project into the PostgreSQL database.
func (p *PostgreSQLProjectRepository) Create(ctx context.Context, project *scopeDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO projects (id, name, description, enabled, domain_id, parent_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.Description,
		project.Enabled,
		project.DomainID,
		project.ParentID,
		project.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// Update modifies an existing Project in the PostgreSQL database. The owning
// domain and parent pointer are immutable and not part of the update.
func (p *PostgreSQLProjectRepository) Update(ctx context.Context, project *scopeDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE projects
			  SET name = $1,
			  	  description = $2,
				  enabled = $3
			  WHERE id = $4`

	_, err := querier.ExecContext(
		ctx,
		query,
		project.Name,
		project.Description,
		project.Enabled,
		project.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update project")
	}

	return nil
}

// Get retrieves a Project by ID. Returns ErrProjectNotFound if it doesn't exist.
func (p *PostgreSQLProjectRepository) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects WHERE id = $1`

	var project scopeDomain.Project

	err := querier.QueryRowContext(ctx, query, projectID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Enabled,
		&project.DomainID,
		&project.ParentID,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scopeDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}

	return &project, nil
}

// GetByName retrieves a Project by name within its owning domain.
func (p *PostgreSQLProjectRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects WHERE domain_id = $1 AND name = $2`

	var project scopeDomain.Project

	err := querier.QueryRowContext(ctx, query, domainID, name).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Enabled,
		&project.DomainID,
		&project.ParentID,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scopeDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project by name")
	}

	return &project, nil
}

// List retrieves projects ordered by creation time with offset/limit pagination.
func (p *PostgreSQLProjectRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, domain_id, parent_id, created_at
			  FROM projects ORDER BY created_at ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer rows.Close()

	return scanProjects(rows)
}

// CountByDomain returns the number of projects owned by the given domain.
// Used by the domain-delete ScopeInUse check.
func (p *PostgreSQLProjectRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM projects WHERE domain_id = $1`

	var count int
	if err := querier.QueryRowContext(ctx, query, domainID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count projects by domain")
	}

	return count, nil
}

// CountChildren returns the number of projects whose parent is the given
// project. Used by the project-delete ScopeInUse check.
func (p *PostgreSQLProjectRepository) CountChildren(ctx context.Context, projectID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM projects WHERE parent_id = $1`

	var count int
	if err := querier.QueryRowContext(ctx, query, projectID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count child projects")
	}

	return count, nil
}

// Delete removes a Project row. Returns ErrProjectNotFound if no row matched.
func (p *PostgreSQLProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM projects WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, projectID)
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

// scanProjects reads all project rows from the result set.
func scanProjects(rows *sql.Rows) ([]*scopeDomain.Project, error) {
	var projects []*scopeDomain.Project
	for rows.Next() {
		var project scopeDomain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Enabled,
			&project.DomainID,
			&project.ParentID,
			&project.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate projects")
	}
	return projects, nil
}

// NewPostgreSQLProjectRepository creates a new PostgreSQL Project repository.
func NewPostgreSQLProjectRepository(db *sql.DB) *PostgreSQLProjectRepository {
	return &PostgreSQLProjectRepository{db: db}
}

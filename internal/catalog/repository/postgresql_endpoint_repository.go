// Package repository provides PostgreSQL and MySQL persistence for the
// service catalog.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLEndpointRepository implements Endpoint persistence for PostgreSQL.
type PostgreSQLEndpointRepository struct {
	db *sql.DB
}

// Create inserts a new Endpoint into the PostgreSQL database.
func (p *PostgreSQLEndpointRepository) Create(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO endpoints (id, name, type, url, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		endpoint.ID,
		endpoint.Name,
		endpoint.Type,
		endpoint.URL,
		endpoint.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create endpoint")
	}
	return nil
}

// Update modifies an existing Endpoint.
func (p *PostgreSQLEndpointRepository) Update(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE endpoints SET name = $1, type = $2, url = $3 WHERE id = $4`

	_, err := querier.ExecContext(ctx, query, endpoint.Name, endpoint.Type, endpoint.URL, endpoint.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update endpoint")
	}

	return nil
}

// Get retrieves an Endpoint by ID. Returns ErrEndpointNotFound if it doesn't exist.
func (p *PostgreSQLEndpointRepository) Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, type, url, created_at FROM endpoints WHERE id = $1`

	var endpoint catalogDomain.Endpoint

	err := querier.QueryRowContext(ctx, query, endpointID).Scan(
		&endpoint.ID,
		&endpoint.Name,
		&endpoint.Type,
		&endpoint.URL,
		&endpoint.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrEndpointNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get endpoint")
	}

	return &endpoint, nil
}

// GetByName retrieves an Endpoint by its unique name.
func (p *PostgreSQLEndpointRepository) GetByName(ctx context.Context, name string) (*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, type, url, created_at FROM endpoints WHERE name = $1`

	var endpoint catalogDomain.Endpoint

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&endpoint.ID,
		&endpoint.Name,
		&endpoint.Type,
		&endpoint.URL,
		&endpoint.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrEndpointNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get endpoint by name")
	}

	return &endpoint, nil
}

// List retrieves all endpoints ordered by type then name.
func (p *PostgreSQLEndpointRepository) List(ctx context.Context) ([]*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, type, url, created_at FROM endpoints ORDER BY type ASC, name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list endpoints")
	}
	defer rows.Close()

	var endpoints []*catalogDomain.Endpoint
	for rows.Next() {
		var endpoint catalogDomain.Endpoint
		if err := rows.Scan(
			&endpoint.ID,
			&endpoint.Name,
			&endpoint.Type,
			&endpoint.URL,
			&endpoint.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan endpoint")
		}
		endpoints = append(endpoints, &endpoint)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate endpoints")
	}

	return endpoints, nil
}

// Delete removes an Endpoint row. Returns ErrEndpointNotFound if no row matched.
func (p *PostgreSQLEndpointRepository) Delete(ctx context.Context, endpointID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM endpoints WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, endpointID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete endpoint")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return catalogDomain.ErrEndpointNotFound
	}

	return nil
}

// NewPostgreSQLEndpointRepository creates a new PostgreSQL Endpoint repository.
func NewPostgreSQLEndpointRepository(db *sql.DB) *PostgreSQLEndpointRepository {
	return &PostgreSQLEndpointRepository{db: db}
}

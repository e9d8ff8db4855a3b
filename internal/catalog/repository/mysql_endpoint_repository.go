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

// MySQLEndpointRepository implements Endpoint persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLEndpointRepository struct {
	db *sql.DB
}

// Create inserts a new Endpoint into the MySQL database.
func (m *MySQLEndpointRepository) Create(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO endpoints (id, name, type, url, created_at) VALUES (?, ?, ?, ?, ?)`

	id, err := endpoint.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal endpoint id")
	}

	_, err = querier.ExecContext(ctx, query, id, endpoint.Name, endpoint.Type, endpoint.URL, endpoint.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create endpoint")
	}
	return nil
}

// Update modifies an existing Endpoint.
func (m *MySQLEndpointRepository) Update(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE endpoints SET name = ?, type = ?, url = ? WHERE id = ?`

	id, err := endpoint.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal endpoint id")
	}

	_, err = querier.ExecContext(ctx, query, endpoint.Name, endpoint.Type, endpoint.URL, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update endpoint")
	}

	return nil
}

// Get retrieves an Endpoint by ID. Returns ErrEndpointNotFound if it doesn't exist.
func (m *MySQLEndpointRepository) Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, type, url, created_at FROM endpoints WHERE id = ?`

	id, err := endpointID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal endpoint id")
	}

	return scanMySQLEndpoint(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves an Endpoint by its unique name.
func (m *MySQLEndpointRepository) GetByName(ctx context.Context, name string) (*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, type, url, created_at FROM endpoints WHERE name = ?`

	return scanMySQLEndpoint(querier.QueryRowContext(ctx, query, name))
}

// List retrieves all endpoints ordered by type then name.
func (m *MySQLEndpointRepository) List(ctx context.Context) ([]*catalogDomain.Endpoint, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLEndpointRepository) Delete(ctx context.Context, endpointID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM endpoints WHERE id = ?`

	id, err := endpointID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal endpoint id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// scanMySQLEndpoint scans a single endpoint row.
func scanMySQLEndpoint(row *sql.Row) (*catalogDomain.Endpoint, error) {
	var endpoint catalogDomain.Endpoint

	err := row.Scan(
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

// NewMySQLEndpointRepository creates a new MySQL Endpoint repository.
func NewMySQLEndpointRepository(db *sql.DB) *MySQLEndpointRepository {
	return &MySQLEndpointRepository{db: db}
}

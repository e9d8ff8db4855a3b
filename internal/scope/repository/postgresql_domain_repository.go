// Package repository implements data persistence for the scope hierarchy.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). PostgreSQL uses native UUID types, MySQL uses BINARY(16).
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

// PostgreSQLDomainRepository implements Domain persistence for PostgreSQL.
type PostgreSQLDomainRepository struct {
	db *sql.DB
}

// Create inserts a new Domain into the PostgreSQL database.
func (p *PostgreSQLDomainRepository) Create(ctx context.Context, domain *scopeDomain.Domain) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO domains (id, name, description, enabled, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		domain.ID,
		domain.Name,
		domain.Description,
		domain.Enabled,
		domain.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create domain")
	}
	return nil
}

// Update modifies an existing Domain in the PostgreSQL database.
func (p *PostgreSQLDomainRepository) Update(ctx context.Context, domain *scopeDomain.Domain) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE domains
			  SET name = $1,
			  	  description = $2,
				  enabled = $3
			  WHERE id = $4`

	_, err := querier.ExecContext(
		ctx,
		query,
		domain.Name,
		domain.Description,
		domain.Enabled,
		domain.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update domain")
	}

	return nil
}

// Get retrieves a Domain by ID. Returns ErrDomainNotFound if the domain
// doesn't exist; disabled domains are returned like any other row.
func (p *PostgreSQLDomainRepository) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains WHERE id = $1`

	var domain scopeDomain.Domain

	err := querier.QueryRowContext(ctx, query, domainID).Scan(
		&domain.ID,
		&domain.Name,
		&domain.Description,
		&domain.Enabled,
		&domain.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scopeDomain.ErrDomainNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get domain")
	}

	return &domain, nil
}

// GetByName retrieves a Domain by its globally unique name.
func (p *PostgreSQLDomainRepository) GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains WHERE name = $1`

	var domain scopeDomain.Domain

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&domain.ID,
		&domain.Name,
		&domain.Description,
		&domain.Enabled,
		&domain.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scopeDomain.ErrDomainNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get domain by name")
	}

	return &domain, nil
}

// List retrieves domains ordered by creation time with offset/limit pagination.
func (p *PostgreSQLDomainRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains
			  ORDER BY created_at ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domains")
	}
	defer rows.Close()

	var domains []*scopeDomain.Domain
	for rows.Next() {
		var domain scopeDomain.Domain
		if err := rows.Scan(
			&domain.ID,
			&domain.Name,
			&domain.Description,
			&domain.Enabled,
			&domain.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan domain")
		}
		domains = append(domains, &domain)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate domains")
	}

	return domains, nil
}

// Delete removes a Domain row. Returns ErrDomainNotFound if no row matched.
func (p *PostgreSQLDomainRepository) Delete(ctx context.Context, domainID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM domains WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, domainID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete domain")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return scopeDomain.ErrDomainNotFound
	}

	return nil
}

// NewPostgreSQLDomainRepository creates a new PostgreSQL Domain repository.
func NewPostgreSQLDomainRepository(db *sql.DB) *PostgreSQLDomainRepository {
	return &PostgreSQLDomainRepository{db: db}
}

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

// MySQLDomainRepository implements Domain persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLDomainRepository struct {
	db *sql.DB
}

// Create inserts a new Domain into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLDomainRepository) Create(ctx context.Context, domain *scopeDomain.Domain) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO domains (id, name, description, enabled, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := domain.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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

// Update modifies an existing Domain in the MySQL database.
func (m *MySQLDomainRepository) Update(ctx context.Context, domain *scopeDomain.Domain) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE domains
			  SET name = ?,
			  	  description = ?,
				  enabled = ?
			  WHERE id = ?`

	id, err := domain.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		domain.Name,
		domain.Description,
		domain.Enabled,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update domain")
	}

	return nil
}

// Get retrieves a Domain by ID. Returns ErrDomainNotFound if it doesn't exist.
func (m *MySQLDomainRepository) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains WHERE id = ?`

	id, err := domainID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal domain id")
	}

	var domain scopeDomain.Domain

	err = querier.QueryRowContext(ctx, query, id).Scan(
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
func (m *MySQLDomainRepository) GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains WHERE name = ?`

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
func (m *MySQLDomainRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, enabled, created_at FROM domains
			  ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLDomainRepository) Delete(ctx context.Context, domainID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM domains WHERE id = ?`

	id, err := domainID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal domain id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// NewMySQLDomainRepository creates a new MySQL Domain repository.
func NewMySQLDomainRepository(db *sql.DB) *MySQLDomainRepository {
	return &MySQLDomainRepository{db: db}
}

// Package repository provides PostgreSQL and MySQL persistence for tokens and
// the per-user revocation watermark.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL.
// Role names are stored as a native text array.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token into the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (id, user_id, scope_kind, scope_id, roles, token_hash, issued_at, expires_at, revoked_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var scopeKind sql.NullString
	var scopeID uuid.NullUUID
	if token.Scope != nil {
		scopeKind = sql.NullString{String: string(token.Scope.Kind), Valid: true}
		scopeID = uuid.NullUUID{UUID: token.Scope.ID, Valid: true}
	}

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		scopeKind,
		scopeID,
		pq.Array(token.Roles),
		token.TokenHash,
		token.IssuedAt,
		token.ExpiresAt,
		token.RevokedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// GetByHash retrieves a Token by its hash. Returns ErrTokenNotFound if no
// stored token matches.
func (p *PostgreSQLTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, scope_kind, scope_id, roles, token_hash, issued_at, expires_at, revoked_at
			  FROM tokens WHERE token_hash = $1`

	var token tokenDomain.Token
	var scopeKind sql.NullString
	var scopeID uuid.NullUUID
	var roles pq.StringArray

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&scopeKind,
		&scopeID,
		&roles,
		&token.TokenHash,
		&token.IssuedAt,
		&token.ExpiresAt,
		&token.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	token.Roles = roles
	if scopeKind.Valid && scopeID.Valid {
		token.Scope = &scopeDomain.ScopeRef{
			Kind: scopeDomain.ScopeKind(scopeKind.String),
			ID:   scopeID.UUID,
		}
	}

	return &token, nil
}

// RevokeByHash marks the token revoked. Idempotent: an already revoked token
// keeps its original revocation time. Returns ErrTokenNotFound if no stored
// token matches.
func (p *PostgreSQLTokenRepository) RevokeByHash(ctx context.Context, tokenHash string, revokedAt time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens SET revoked_at = COALESCE(revoked_at, $1) WHERE token_hash = $2`

	result, err := querier.ExecContext(ctx, query, revokedAt, tokenHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return tokenDomain.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredBefore physically removes token rows whose expiry precedes the
// cutoff. Expired tokens stop validating immediately; this only reclaims
// storage after the audit window.
func (p *PostgreSQLTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired tokens")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}

	return affected, nil
}

// DeleteByUser removes all token rows issued to the user. Part of the
// user-deletion cascade.
func (p *PostgreSQLTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM tokens WHERE user_id = $1`

	_, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete tokens for user")
	}
	return nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

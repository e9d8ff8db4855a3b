package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// MySQLTokenRepository implements Token persistence for MySQL.
// Uses BINARY(16) for UUIDs; role names are stored as a JSON array since
// MySQL has no native string-array type.
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token into the MySQL database.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO tokens (id, user_id, scope_kind, scope_id, roles, token_hash, issued_at, expires_at, revoked_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	userID, err := token.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	var scopeKind sql.NullString
	var scopeID any
	if token.Scope != nil {
		scopeKind = sql.NullString{String: string(token.Scope.Kind), Valid: true}
		scopeID, err = token.Scope.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal scope id")
		}
	}

	roles, err := json.Marshal(token.Roles)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal roles")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
		scopeKind,
		scopeID,
		string(roles),
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
func (m *MySQLTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*tokenDomain.Token, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, scope_kind, scope_id, roles, token_hash, issued_at, expires_at, revoked_at
			  FROM tokens WHERE token_hash = ?`

	var token tokenDomain.Token
	var scopeKind sql.NullString
	var scopeID uuid.NullUUID
	var roles []byte

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

	if err := json.Unmarshal(roles, &token.Roles); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal roles")
	}
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
func (m *MySQLTokenRepository) RevokeByHash(ctx context.Context, tokenHash string, revokedAt time.Time) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE tokens SET revoked_at = COALESCE(revoked_at, ?) WHERE token_hash = ?`

	result, err := querier.ExecContext(ctx, query, revokedAt, tokenHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		// MySQL reports zero affected rows for no-change updates, so an
		// already revoked token and a missing token look the same here.
		if _, err := m.GetByHash(ctx, tokenHash); err != nil {
			return err
		}
	}

	return nil
}

// DeleteExpiredBefore physically removes token rows whose expiry precedes the
// cutoff.
func (m *MySQLTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE expires_at < ?`

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
func (m *MySQLTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM tokens WHERE user_id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete tokens for user")
	}
	return nil
}

// NewMySQLTokenRepository creates a new MySQL Token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}

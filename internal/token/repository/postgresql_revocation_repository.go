package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
)

// PostgreSQLRevocationRepository implements the per-user revocation watermark
// for PostgreSQL. Bulk revocation writes a single watermark row instead of
// flagging every token; validation compares a token's issuance time against
// the watermark. The watermark only moves forward.
type PostgreSQLRevocationRepository struct {
	db *sql.DB
}

// SetWatermark records that every token issued to the user at or before the
// given instant is revoked.
func (p *PostgreSQLRevocationRepository) SetWatermark(
	ctx context.Context,
	userID uuid.UUID,
	revokedBefore time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO token_revocations (user_id, revoked_before) VALUES ($1, $2)
			  ON CONFLICT (user_id) DO UPDATE
			  SET revoked_before = GREATEST(token_revocations.revoked_before, EXCLUDED.revoked_before)`

	_, err := querier.ExecContext(ctx, query, userID, revokedBefore)
	if err != nil {
		return apperrors.Wrap(err, "failed to set revocation watermark")
	}
	return nil
}

// GetWatermark retrieves the user's revocation watermark. Returns nil when no
// bulk revocation has happened for the user.
func (p *PostgreSQLRevocationRepository) GetWatermark(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT revoked_before FROM token_revocations WHERE user_id = $1`

	var revokedBefore time.Time

	err := querier.QueryRowContext(ctx, query, userID).Scan(&revokedBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get revocation watermark")
	}

	return &revokedBefore, nil
}

// DeleteWatermark removes the user's watermark row. No-op when none exists.
func (p *PostgreSQLRevocationRepository) DeleteWatermark(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM token_revocations WHERE user_id = $1`

	_, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete revocation watermark")
	}
	return nil
}

// NewPostgreSQLRevocationRepository creates a new PostgreSQL revocation repository.
func NewPostgreSQLRevocationRepository(db *sql.DB) *PostgreSQLRevocationRepository {
	return &PostgreSQLRevocationRepository{db: db}
}

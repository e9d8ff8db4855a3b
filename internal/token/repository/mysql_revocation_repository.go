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

// MySQLRevocationRepository implements the per-user revocation watermark for
// MySQL. The watermark only moves forward.
type MySQLRevocationRepository struct {
	db *sql.DB
}

// SetWatermark records that every token issued to the user at or before the
// given instant is revoked.
func (m *MySQLRevocationRepository) SetWatermark(
	ctx context.Context,
	userID uuid.UUID,
	revokedBefore time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO token_revocations (user_id, revoked_before) VALUES (?, ?)
			  ON DUPLICATE KEY UPDATE revoked_before = GREATEST(revoked_before, VALUES(revoked_before))`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, id, revokedBefore)
	if err != nil {
		return apperrors.Wrap(err, "failed to set revocation watermark")
	}
	return nil
}

// GetWatermark retrieves the user's revocation watermark. Returns nil when no
// bulk revocation has happened for the user.
func (m *MySQLRevocationRepository) GetWatermark(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT revoked_before FROM token_revocations WHERE user_id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	var revokedBefore time.Time

	err = querier.QueryRowContext(ctx, query, id).Scan(&revokedBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get revocation watermark")
	}

	return &revokedBefore, nil
}

// DeleteWatermark removes the user's watermark row. No-op when none exists.
func (m *MySQLRevocationRepository) DeleteWatermark(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM token_revocations WHERE user_id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete revocation watermark")
	}
	return nil
}

// NewMySQLRevocationRepository creates a new MySQL revocation repository.
func NewMySQLRevocationRepository(db *sql.DB) *MySQLRevocationRepository {
	return &MySQLRevocationRepository{db: db}
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenRevoker backs the principal module's token cascades without pulling in
// the full token use case, which itself depends on the principal module for
// credential verification. Password changes and account disables move the
// user's revocation watermark; user deletion purges the rows outright.
type TokenRevoker struct {
	tokenRepo      TokenRepository
	revocationRepo RevocationRepository
}

// NewTokenRevoker creates a TokenRevoker backed by the token and revocation stores.
func NewTokenRevoker(tokenRepo TokenRepository, revocationRepo RevocationRepository) *TokenRevoker {
	return &TokenRevoker{tokenRepo: tokenRepo, revocationRepo: revocationRepo}
}

// RevokeAllForUser invalidates every token issued to the user before now.
func (r *TokenRevoker) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.revocationRepo.SetWatermark(ctx, userID, time.Now().UTC())
}

// PurgeAllForUser removes the user's token rows and watermark row. Both tables
// reference the user row, so the user-deletion cascade must clear them before
// deleting the user itself.
func (r *TokenRevoker) PurgeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	return r.revocationRepo.DeleteWatermark(ctx, userID)
}

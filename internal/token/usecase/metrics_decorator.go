package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/metrics"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *tokenDomain.IssueInput,
) (*tokenDomain.Token, string, error) {
	start := time.Now()
	token, plainToken, err := t.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "issue", status)
	t.metrics.RecordDuration(ctx, "token", "issue", time.Since(start), status)

	return token, plainToken, err
}

// Validate records metrics for token validation operations.
func (t *tokenUseCaseWithMetrics) Validate(ctx context.Context, plainToken string) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Validate(ctx, plainToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "validate", status)
	t.metrics.RecordDuration(ctx, "token", "validate", time.Since(start), status)

	return token, err
}

// Rescope records metrics for token rescope operations.
func (t *tokenUseCaseWithMetrics) Rescope(
	ctx context.Context,
	plainToken string,
	newScope scopeDomain.ScopeRef,
) (*tokenDomain.Token, string, error) {
	start := time.Now()
	token, newPlainToken, err := t.next.Rescope(ctx, plainToken, newScope)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "rescope", status)
	t.metrics.RecordDuration(ctx, "token", "rescope", time.Since(start), status)

	return token, newPlainToken, err
}

// Revoke records metrics for single-token revocation operations.
func (t *tokenUseCaseWithMetrics) Revoke(ctx context.Context, plainToken string) error {
	start := time.Now()
	err := t.next.Revoke(ctx, plainToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "revoke", status)
	t.metrics.RecordDuration(ctx, "token", "revoke", time.Since(start), status)

	return err
}

// RevokeAllForUser records metrics for bulk revocation operations.
func (t *tokenUseCaseWithMetrics) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	start := time.Now()
	err := t.next.RevokeAllForUser(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "revoke_all_for_user", status)
	t.metrics.RecordDuration(ctx, "token", "revoke_all_for_user", time.Since(start), status)

	return err
}

// CleanupExpired records metrics for expired-token cleanup operations.
func (t *tokenUseCaseWithMetrics) CleanupExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	removed, err := t.next.CleanupExpired(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "cleanup_expired", status)
	t.metrics.RecordDuration(ctx, "token", "cleanup_expired", time.Since(start), status)

	return removed, err
}

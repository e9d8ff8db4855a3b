package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// RunRevokeUserTokens moves the revocation watermark of a user so that every
// token issued before now fails validation. Supports both text and JSON output
// formats.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeUserTokens(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	out io.Writer,
	userID string,
	format string,
) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	logger.Info("revoking all tokens for user", slog.String("user_id", id.String()))

	if err := useCase.RevokeAllForUser(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}

	if format == "json" {
		result := map[string]interface{}{
			"user_id": id.String(),
			"revoked": true,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	} else {
		_, _ = fmt.Fprintf(out, "Successfully revoked all tokens for user %s\n", id.String())
	}

	logger.Info("user tokens revoked", slog.String("user_id", id.String()))

	return nil
}

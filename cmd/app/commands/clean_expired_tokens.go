package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// RunCleanExpiredTokens deletes token records whose expiry is past the audit
// retention window. Supports both text and JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanExpiredTokens(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
	out io.Writer,
	format string,
) error {
	logger.Info("cleaning expired tokens")

	count, err := useCase.CleanupExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to cleanup expired tokens: %w", err)
	}

	if format == "json" {
		outputCleanExpiredJSON(out, count)
	} else {
		outputCleanExpiredText(out, count)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(out io.Writer, count int64) {
	_, _ = fmt.Fprintf(out, "Successfully deleted %d expired token(s)\n", count)
}

// outputCleanExpiredJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredJSON(out io.Writer, count int64) {
	result := map[string]interface{}{
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(out, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(out, string(jsonBytes))
}

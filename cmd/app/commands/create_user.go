package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	principalUseCase "github.com/allisson/identity/internal/principal/usecase"
)

// CreateUserParams groups the create-user command inputs.
type CreateUserParams struct {
	DomainID         string
	Name             string
	Password         string
	Description      string
	Enabled          bool
	DefaultProjectID string
	Format           string
}

// RunCreateUser creates a new user in a domain. When the password is empty the
// command prompts for it interactively. Outputs the created user in either
// text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase principalUseCase.UserUseCase,
	logger *slog.Logger,
	params CreateUserParams,
	io IOTuple,
) error {
	domainID, err := uuid.Parse(params.DomainID)
	if err != nil {
		return fmt.Errorf("invalid domain id: %w", err)
	}

	var defaultProjectID *uuid.UUID
	if params.DefaultProjectID != "" {
		projectID, err := uuid.Parse(params.DefaultProjectID)
		if err != nil {
			return fmt.Errorf("invalid default project id: %w", err)
		}
		defaultProjectID = &projectID
	}

	password := params.Password
	if password == "" {
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	logger.Info("creating new user",
		slog.String("name", params.Name),
		slog.String("domain_id", domainID.String()),
	)

	input := &principalDomain.CreateUserInput{
		Name:             params.Name,
		Description:      params.Description,
		Enabled:          params.Enabled,
		DomainID:         domainID,
		DefaultProjectID: defaultProjectID,
		Password:         password,
	}

	user, err := userUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if params.Format == "json" {
		outputUserJSON(user, io)
	} else {
		outputUserText(user, io)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("name", user.Name),
	)

	return nil
}

// promptForPassword reads the user password from the interactive reader.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// outputUserText outputs the created user in human-readable text format.
func outputUserText(user *principalDomain.User, io IOTuple) {
	_, _ = fmt.Fprintln(io.Writer, "User created successfully!")
	_, _ = fmt.Fprintf(io.Writer, "ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(io.Writer, "Name: %s\n", user.Name)
	_, _ = fmt.Fprintf(io.Writer, "Domain ID: %s\n", user.DomainID.String())
	_, _ = fmt.Fprintf(io.Writer, "Enabled: %t\n", user.Enabled)
	if user.DefaultProjectID != nil {
		_, _ = fmt.Fprintf(io.Writer, "Default Project ID: %s\n", user.DefaultProjectID.String())
	}
}

// outputUserJSON outputs the created user in JSON format for machine consumption.
func outputUserJSON(user *principalDomain.User, io IOTuple) {
	result := map[string]interface{}{
		"id":        user.ID.String(),
		"name":      user.Name,
		"domain_id": user.DomainID.String(),
		"enabled":   user.Enabled,
	}
	if user.DefaultProjectID != nil {
		result["default_project_id"] = user.DefaultProjectID.String()
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(io.Writer, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(io.Writer, string(jsonBytes))
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	userUseCase "github.com/allisson/userauth/internal/user/usecase"
)

// RunCreateUser registers a new user account from the command line.
// The password goes through the same validation and hashing as the HTTP
// registration endpoint. Outputs the created user in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	name string,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("email", email))

	input := userUseCase.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	}

	user, err := useCase.RegisterUser(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "User created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "ID:    %d\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Name:  %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	userUseCase "github.com/allisson/userauth/internal/user/usecase"
)

// RunGetUser looks up a user account by email from the command line and
// outputs it in either text or JSON format. The password hash is never
// printed.
//
// Requirements: Database must be migrated and accessible.
func RunGetUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	email string,
	format string,
	io IOTuple,
) error {
	logger.Info("looking up user", slog.String("email", email))

	user, err := useCase.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
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
		_, _ = fmt.Fprintf(io.Writer, "ID:    %d\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Name:  %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	}

	return nil
}

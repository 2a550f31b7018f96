package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/userauth/internal/user/domain"
	userUseCase "github.com/allisson/userauth/internal/user/usecase"
	userMocks "github.com/allisson/userauth/internal/user/usecase/mocks"
)

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	input := userUseCase.RegisterUserInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "Str0ng!Password",
	}
	user := &userDomain.User{
		ID:        42,
		Name:      "John Doe",
		Email:     "john@example.com",
		CreatedAt: time.Now(),
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &userMocks.MockUserUseCase{}
		mockUseCase.On("RegisterUser", ctx, input).Return(user, nil).Once()

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunCreateUser(
			ctx,
			mockUseCase,
			logger,
			"John Doe",
			"john@example.com",
			"Str0ng!Password",
			"text",
			io,
		)

		require.NoError(t, err)
		require.Contains(t, out.String(), "User created successfully!")
		require.Contains(t, out.String(), "42")
		require.Contains(t, out.String(), "john@example.com")
		require.NotContains(t, out.String(), "Str0ng!Password")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &userMocks.MockUserUseCase{}
		mockUseCase.On("RegisterUser", ctx, input).Return(user, nil).Once()

		var out bytes.Buffer
		io := IOTuple{Reader: nil, Writer: &out}

		err := RunCreateUser(
			ctx,
			mockUseCase,
			logger,
			"John Doe",
			"john@example.com",
			"Str0ng!Password",
			"json",
			io,
		)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"email": "john@example.com"`)
		require.Contains(t, out.String(), `"id": 42`)
		require.NotContains(t, out.String(), "Str0ng!Password")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("usecase-error", func(t *testing.T) {
		mockUseCase := &userMocks.MockUserUseCase{}
		mockUseCase.On("RegisterUser", ctx, input).Return(nil, assert.AnError).Once()

		err := RunCreateUser(
			ctx,
			mockUseCase,
			logger,
			"John Doe",
			"john@example.com",
			"Str0ng!Password",
			"text",
			IOTuple{Writer: &bytes.Buffer{}},
		)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
	})
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/userauth/internal/database"
	"github.com/allisson/userauth/internal/user/domain"

	apperrors "github.com/allisson/userauth/internal/errors"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user and fills in the database-assigned ID. A
// duplicate email reports domain.ErrUserAlreadyExists.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (name, email, password, created_at, updated_at)
			  VALUES (?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query, user.Name, user.Email, user.Password)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted user id")
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users WHERE id = ?`

	return r.getUser(ctx, query, "failed to get user by id", id)
}

// GetByEmail retrieves a user by email
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users WHERE email = ?`

	return r.getUser(ctx, query, "failed to get user by email", email)
}

func (r *MySQLUserRepository) getUser(
	ctx context.Context,
	query string,
	wrapMsg string,
	args ...any,
) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	return &user, nil
}

// isMySQLUniqueViolation matches "Error 1062: Duplicate entry" errors.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row. A unique-constraint violation on username
// is translated to repository.ErrUsernameExists so callers can ignore it
// explicitly instead of swallowing arbitrary errors.
func (r *UserPostgres) Create(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	const q = `
		INSERT INTO usuarios (username, password_hash, rol)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, rol
	`
	row := r.db.QueryRowContext(ctx, q, username, passwordHash, role)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, repository.ErrUsernameExists
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsername fetches a single user by username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
		SELECT id, username, password_hash, rol
		FROM usuarios
		WHERE username = $1
	`
	row := r.db.QueryRowContext(ctx, q, username)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kaushl12/TaskCanvas/models"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user with an already-hashed password. A duplicate
// email surfaces as ErrDuplicateEmail, distinct from other failures.
func (s *UserStore) Create(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	u := &models.User{
		Email:    email,
		Name:     name,
		Password: passwordHash,
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, password) VALUES ($1, $2, $3) RETURNING id, created_at`,
		email, name, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, password, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

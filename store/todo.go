package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kaushl12/TaskCanvas/models"
	"github.com/kaushl12/TaskCanvas/utils"
)

type TodoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

const todoCols = `id, user_id, title, due_date, done, created_at, updated_at`

func scanTodo(scanner interface{ Scan(...any) error }) (*models.Todo, error) {
	var t models.Todo
	err := scanner.Scan(&t.ID, &t.UserID, &t.Title, &t.DueDate, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts the todo under a fresh random id. Retries a couple of
// times on the astronomically unlikely id collision.
func (s *TodoStore) Create(ctx context.Context, todo *models.Todo) error {
	for i := 0; i < 3; i++ {
		id, err := utils.GenerateRandomID()
		if err != nil {
			return fmt.Errorf("generate todo id: %w", err)
		}

		err = s.db.QueryRowContext(ctx,
			`INSERT INTO todos (id, user_id, title, due_date, done) VALUES ($1, $2, $3, $4, $5)
			 RETURNING created_at, updated_at`,
			id, todo.UserID, todo.Title, todo.DueDate, todo.Done,
		).Scan(&todo.CreatedAt, &todo.UpdatedAt)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}

		todo.ID = id
		return nil
	}
	return errors.New("failed to generate a unique todo id")
}

// ListByUser returns every todo owned by userID, newest first.
func (s *TodoStore) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+todoCols+` FROM todos WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// GetByIDAndUser fetches one todo scoped to its owner. A todo owned by a
// different user comes back as ErrNotFound, same as a missing id.
func (s *TodoStore) GetByIDAndUser(ctx context.Context, id string, userID int64) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+todoCols+` FROM todos WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

// Update persists title, due_date and done. The WHERE clause repeats the
// owner predicate so a concurrent delete by the owner yields ErrNotFound
// instead of silently writing a resurrected row.
func (s *TodoStore) Update(ctx context.Context, todo *models.Todo) error {
	err := s.db.QueryRowContext(ctx,
		`UPDATE todos SET title = $1, due_date = $2, done = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5 RETURNING updated_at`,
		todo.Title, todo.DueDate, todo.Done, todo.ID, todo.UserID,
	).Scan(&todo.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

// Delete removes the todo scoped to its owner. Deleting an already
// deleted (or never owned) id yields ErrNotFound.
func (s *TodoStore) Delete(ctx context.Context, id string, userID int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
)

// Open connects to PostgreSQL and creates the tables if they do not exist.
func Open(uri string) (*sql.DB, error) {
	db, err := sql.Open("pgx", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	fmt.Println("Connected to PostgreSQL successfully")

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS todos (
		id VARCHAR(50) PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		due_date TIMESTAMPTZ NOT NULL,
		done BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_todos_user_id ON todos(user_id)
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	fmt.Println("Tables created or already exist")
	return nil
}

// Close closes the connection pool.
func Close(db *sql.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			panic(err)
		}
		fmt.Println("Database connection closed")
	}
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open initializes the shared connection pool to the PostgreSQL database.
// The pool is verified with a ping before it is returned.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the tasks table if it does not already exist.
// It is safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const createTableQuery = `
	CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL
	);`

	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create 'tasks' table: %w", err)
	}
	return nil
}

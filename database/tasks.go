package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anggarapp/task-crud-api/models"
)

// ErrTaskNotFound reports that no task row matched the given id.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore runs the five task statements against the shared pool.
// Every operation is a single autocommitted statement.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore is a constructor for the TaskStore struct.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create inserts a new task. The id is assigned by the database.
func (s *TaskStore) Create(ctx context.Context, title, description string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (title, description) VALUES ($1, $2)",
		title, description)
	return err
}

// Get retrieves a single task by its id.
func (s *TaskStore) Get(ctx context.Context, id int) (models.Task, error) {
	var t models.Task
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, description FROM tasks WHERE id = $1", id).
		Scan(&t.ID, &t.Title, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	} else if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// List retrieves all tasks. The slice is never nil, so an empty table
// serializes as [] rather than null.
func (s *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description FROM tasks ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update rewrites title and description for the given id. The affected-row
// count is intentionally not inspected: updating an absent id succeeds.
func (s *TaskStore) Update(ctx context.Context, id int, title, description string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET title = $1, description = $2 WHERE id = $3",
		title, description, id)
	return err
}

// Delete removes the task with the given id, reporting ErrTaskNotFound
// when no row was deleted.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

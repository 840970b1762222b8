package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo-cli/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const DefaultTodoDBFileName = "todos.sqlite"

var ErrNotFound = errors.New("not found")

// TodoDB is the SQLite table used by the development backend.
type TodoDB struct {
	db  *sql.DB
	now func() time.Time
}

// OpenTodoDB opens (and migrates) the database at path.
func OpenTodoDB(ctx context.Context, path string) (*TodoDB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	t := &TodoDB{db: db, now: time.Now}
	if err := t.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return t, nil
}

func (t *TodoDB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS todos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_todos_created ON todos(created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := t.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate todos: %w", err)
		}
	}
	return nil
}

func (t *TodoDB) Close() error { return t.db.Close() }

func (t *TodoDB) Ping(ctx context.Context) error { return t.db.PingContext(ctx) }

// List returns all todos, newest first.
func (t *TodoDB) List(ctx context.Context) ([]model.Task, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT id, title, completed FROM todos ORDER BY created_at_unixms DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		var (
			task model.Task
			id   string
		)
		if err := rows.Scan(&id, &task.Title, &task.Completed); err != nil {
			return nil, err
		}
		task.ID = model.TaskID(id)
		out = append(out, task)
	}
	return out, rows.Err()
}

func (t *TodoDB) Get(ctx context.Context, id model.TaskID) (model.Task, error) {
	var task model.Task
	var sid string
	err := t.db.QueryRowContext(ctx,
		`SELECT id, title, completed FROM todos WHERE id = ?`, string(id)).
		Scan(&sid, &task.Title, &task.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	task.ID = model.TaskID(sid)
	return task, nil
}

// Create stores a new todo with a fresh UUID.
func (t *TodoDB) Create(ctx context.Context, title string, completed bool) (model.Task, error) {
	task := model.Task{
		ID:        model.TaskID(uuid.NewString()),
		Title:     title,
		Completed: completed,
	}
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO todos(id, title, completed, created_at_unixms) VALUES(?, ?, ?, ?)`,
		string(task.ID), task.Title, task.Completed, t.now().UnixMilli())
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Update applies the non-nil fields of patch and returns the updated record.
func (t *TodoDB) Update(ctx context.Context, id model.TaskID, patch model.TaskPatch) (model.Task, error) {
	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if len(sets) == 0 {
		return model.Task{}, errors.New("no updatable fields")
	}
	args = append(args, string(id))

	res, err := t.db.ExecContext(ctx, `UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return model.Task{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, ErrNotFound
	}
	return t.Get(ctx, id)
}

// Delete removes the todo. Deleting an unknown id is not an error.
func (t *TodoDB) Delete(ctx context.Context, id model.TaskID) error {
	_, err := t.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, string(id))
	return err
}

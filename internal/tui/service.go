package tui

import (
	"context"

	"todo-cli/internal/model"
)

// Service is the remote collection the TUI edits. *api.Client implements it.
type Service interface {
	ListTodos(ctx context.Context) ([]model.Task, error)
	CreateTodo(ctx context.Context, title string) (model.Task, error)
	UpdateTodo(ctx context.Context, id model.TaskID, patch model.TaskPatch) (*model.Task, error)
	DeleteTodo(ctx context.Context, id model.TaskID) error
}

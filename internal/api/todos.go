package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"todo-cli/internal/model"
)

const todosPath = "/todos"

func todoPath(id model.TaskID) string {
	return todosPath + "/" + url.PathEscape(string(id))
}

// ListTodos fetches the whole collection. A null body is an empty collection.
func (c *Client) ListTodos(ctx context.Context) ([]model.Task, error) {
	body, err := c.Do(ctx, todosPath, Options{})
	if err != nil {
		return nil, err
	}
	tasks := []model.Task{}
	if len(body) == 0 {
		return tasks, nil
	}
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, c.decodeErr(http.MethodGet, todosPath, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// CreateTodo creates a task and returns the server's record (with its assigned id).
func (c *Client) CreateTodo(ctx context.Context, title string) (model.Task, error) {
	opts, err := JSONBody(http.MethodPost, map[string]string{"title": title})
	if err != nil {
		return model.Task{}, err
	}
	body, err := c.Do(ctx, todosPath, opts)
	if err != nil {
		return model.Task{}, err
	}
	var t model.Task
	if err := json.Unmarshal(body, &t); err != nil {
		return model.Task{}, c.decodeErr(http.MethodPost, todosPath, err)
	}
	if t.ID == "" {
		return model.Task{}, c.decodeErr(http.MethodPost, todosPath, fmt.Errorf("response has no id"))
	}
	return t, nil
}

// UpdateTodo persists patch. Callers only rely on success; the returned record is
// nil when the service answers without a body.
func (c *Client) UpdateTodo(ctx context.Context, id model.TaskID, patch model.TaskPatch) (*model.Task, error) {
	opts, err := JSONBody(http.MethodPut, patch)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, todoPath(id), opts)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	var t model.Task
	if err := json.Unmarshal(body, &t); err != nil || t.ID == "" {
		// The body passed JSON validation; its shape is not part of the contract.
		return nil, nil
	}
	return &t, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id model.TaskID) error {
	_, err := c.Do(ctx, todoPath(id), Options{Method: http.MethodDelete})
	return err
}

func (c *Client) decodeErr(method, path string, err error) error {
	rerr := &RequestError{Method: method, URL: c.BaseURL + path, Err: fmt.Errorf("decode response: %w", err)}
	c.Log.Error("api error", "method", method, "url", rerr.URL, "err", rerr)
	return rerr
}

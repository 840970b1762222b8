package tui

import (
	"context"
	"fmt"
	"sync"

	"todo-cli/internal/model"
)

// fakeService is an in-memory Service. Set the *Err fields to make the
// matching call fail.
type fakeService struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int
	calls  []string

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func newFakeService(tasks ...model.Task) *fakeService {
	return &fakeService{tasks: append([]model.Task(nil), tasks...), nextID: 100}
}

func (f *fakeService) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeService) ListTodos(_ context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]model.Task(nil), f.tasks...), nil
}

func (f *fakeService) CreateTodo(_ context.Context, title string) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create " + title)
	if f.CreateErr != nil {
		return model.Task{}, f.CreateErr
	}
	f.nextID++
	t := model.Task{ID: model.TaskID(fmt.Sprint(f.nextID)), Title: title}
	f.tasks = append([]model.Task{t}, f.tasks...)
	return t, nil
}

func (f *fakeService) UpdateTodo(_ context.Context, id model.TaskID, patch model.TaskPatch) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update " + id.String())
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			f.tasks[i].Completed = *patch.Completed
		}
		t := f.tasks[i]
		return &t, nil
	}
	return nil, fmt.Errorf("todo %s not found", id)
}

func (f *fakeService) DeleteTodo(_ context.Context, id model.TaskID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete " + id.String())
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			break
		}
	}
	return nil
}

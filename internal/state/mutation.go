package state

import (
	"slices"

	"todo-cli/internal/model"
)

// Mutation is a change to a Store. apply returns the inverse mutation, computed
// against the state it was applied to.
type Mutation interface {
	apply(s *Store) Mutation
}

type noop struct{}

func (noop) apply(*Store) Mutation { return noop{} }

type replaceAll struct{ tasks []model.Task }

// ReplaceAll swaps the whole collection. Its inverse restores the previous snapshot.
func ReplaceAll(tasks []model.Task) Mutation {
	return replaceAll{tasks: slices.Clone(tasks)}
}

func (m replaceAll) apply(s *Store) Mutation {
	prev := s.tasks
	s.tasks = slices.Clone(m.tasks)
	return replaceAll{tasks: prev}
}

type prepend struct{ task model.Task }

// Prepend inserts t at the top of the collection.
func Prepend(t model.Task) Mutation { return prepend{task: t} }

func (m prepend) apply(s *Store) Mutation {
	s.tasks = append([]model.Task{m.task}, s.tasks...)
	return remove{id: m.task.ID}
}

type setTitle struct {
	id    model.TaskID
	title string
}

func SetTitle(id model.TaskID, title string) Mutation { return setTitle{id: id, title: title} }

func (m setTitle) apply(s *Store) Mutation {
	i := s.index(m.id)
	if i < 0 {
		return noop{}
	}
	prev := s.tasks[i].Title
	s.tasks[i].Title = m.title
	return setTitle{id: m.id, title: prev}
}

type setCompleted struct {
	id        model.TaskID
	completed bool
}

func SetCompleted(id model.TaskID, completed bool) Mutation {
	return setCompleted{id: id, completed: completed}
}

func (m setCompleted) apply(s *Store) Mutation {
	i := s.index(m.id)
	if i < 0 {
		return noop{}
	}
	prev := s.tasks[i].Completed
	s.tasks[i].Completed = m.completed
	return setCompleted{id: m.id, completed: prev}
}

type remove struct{ id model.TaskID }

// Remove deletes the task with id. Its inverse restores the full pre-removal
// collection, so order is preserved exactly.
func Remove(id model.TaskID) Mutation { return remove{id: id} }

func (m remove) apply(s *Store) Mutation {
	if s.index(m.id) < 0 {
		return noop{}
	}
	prev := s.tasks
	s.tasks = slices.DeleteFunc(slices.Clone(prev), func(t model.Task) bool { return t.ID == m.id })
	return replaceAll{tasks: prev}
}

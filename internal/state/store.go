// Package state owns the in-memory task collection and the active display filter.
//
// A Store is not safe for concurrent use. The TUI mutates it only from its
// event loop; network calls report back as messages.
package state

import (
	"slices"

	"todo-cli/internal/model"
)

type Store struct {
	tasks  []model.Task
	filter model.Filter
}

func New() *Store {
	return &Store{filter: model.FilterAll}
}

// Tasks returns a copy of the collection in display order.
func (s *Store) Tasks() []model.Task { return slices.Clone(s.tasks) }

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Get(id model.TaskID) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) Filter() model.Filter { return s.filter }

// SetFilter changes what Visible returns. The collection is untouched.
func (s *Store) SetFilter(f model.Filter) {
	if f == "" {
		f = model.FilterAll
	}
	s.filter = f
}

// Visible returns the tasks that pass the active filter.
func (s *Store) Visible() []model.Task { return s.filter.Apply(s.tasks) }

// Apply runs m against the store and returns the mutation that undoes it.
func (s *Store) Apply(m Mutation) Mutation {
	if m == nil {
		return noop{}
	}
	return m.apply(s)
}

func (s *Store) index(id model.TaskID) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

package state

import (
	"testing"

	"todo-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(tasks ...model.Task) *Store {
	s := New()
	s.Apply(ReplaceAll(tasks))
	return s
}

func TestSetTitle_InverseRestoresPriorTitle(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})

	undo := s.Apply(SetTitle("1", "B"))
	assert.Equal(t, []model.Task{{ID: "1", Title: "B"}}, s.Tasks())

	s.Apply(undo)
	assert.Equal(t, []model.Task{{ID: "1", Title: "A"}}, s.Tasks())
}

func TestSetTitle_UnknownIDIsNoop(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	undo := s.Apply(SetTitle("nope", "B"))
	s.Apply(undo)
	assert.Equal(t, []model.Task{{ID: "1", Title: "A"}}, s.Tasks())
}

func TestSetCompleted_Inverse(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	undo := s.Apply(SetCompleted("1", true))
	got, ok := s.Get("1")
	require.True(t, ok)
	assert.True(t, got.Completed)

	s.Apply(undo)
	got, _ = s.Get("1")
	assert.False(t, got.Completed)
}

func TestRemove_InverseRestoresSnapshotInOrder(t *testing.T) {
	before := []model.Task{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B", Completed: true},
		{ID: "3", Title: "C"},
	}
	s := seeded(before...)

	undo := s.Apply(Remove("2"))
	assert.Equal(t, []model.Task{{ID: "1", Title: "A"}, {ID: "3", Title: "C"}}, s.Tasks())

	// Unrelated edits between apply and undo do not leak into the snapshot.
	s.Apply(SetTitle("1", "changed"))

	s.Apply(undo)
	assert.Equal(t, before, s.Tasks())
}

func TestPrepend_PutsTaskFirst(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	undo := s.Apply(Prepend(model.Task{ID: "2", Title: "B"}))
	assert.Equal(t, []model.Task{{ID: "2", Title: "B"}, {ID: "1", Title: "A"}}, s.Tasks())

	s.Apply(undo)
	assert.Equal(t, []model.Task{{ID: "1", Title: "A"}}, s.Tasks())
}

func TestReplaceAll_Inverse(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	undo := s.Apply(ReplaceAll(nil))
	assert.Equal(t, 0, s.Len())
	s.Apply(undo)
	assert.Equal(t, 1, s.Len())
}

func TestTasksReturnsCopy(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	got := s.Tasks()
	got[0].Title = "mutated"
	orig, _ := s.Get("1")
	assert.Equal(t, "A", orig.Title)
}

func TestVisibleFollowsFilterWithoutMutating(t *testing.T) {
	s := seeded(
		model.Task{ID: "1", Title: "A"},
		model.Task{ID: "2", Title: "B", Completed: true},
	)

	for _, f := range model.Filters {
		s.SetFilter(f)
		for _, task := range s.Tasks() {
			visible := false
			for _, v := range s.Visible() {
				if v.ID == task.ID {
					visible = true
				}
			}
			assert.Equal(t, f.Match(task), visible, "filter=%s task=%s", f, task.ID)
		}
		assert.Equal(t, 2, s.Len(), "filter must never change the collection")
	}

	s.SetFilter("")
	assert.Equal(t, model.FilterAll, s.Filter())
}

func TestApplyNil(t *testing.T) {
	s := seeded(model.Task{ID: "1", Title: "A"})
	undo := s.Apply(nil)
	s.Apply(undo)
	assert.Equal(t, 1, s.Len())
}

package tui

import (
	"testing"

	"todo-cli/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBindTaskIsPure(t *testing.T) {
	task := model.Task{ID: "7", Title: "Read", Completed: true}
	a := bindTask(task, rowState{})
	b := bindTask(task, rowState{})
	assert.Equal(t, a, b)
	assert.Equal(t, taskRow{id: "7", title: "Read", done: true}, a)

	editing := bindTask(task, rowState{editing: true, editView: "> Read"})
	assert.True(t, editing.editing)
	assert.Equal(t, "> Read", editing.editView)
}

func TestNormalizePane(t *testing.T) {
	out := normalizePane("abc\nlonger line", 5, 3)
	assert.Equal(t, "abc  \nlong…\n     ", out)
}

func TestItemsLeft(t *testing.T) {
	assert.Equal(t, "0 items left", itemsLeft(nil))
	assert.Equal(t, "1 item left", itemsLeft([]model.Task{{ID: "1"}, {ID: "2", Completed: true}}))
}

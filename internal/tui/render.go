package tui

import (
	"todo-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// rowState is the per-item interaction state the renderer needs.
type rowState struct {
	editing bool
	// editView is the rendered inline input while editing.
	editView string
}

// taskRow is the renderable description of one task. It is what the list
// delegate draws; key handlers act on the selected row's id.
type taskRow struct {
	id       model.TaskID
	title    string
	done     bool
	editing  bool
	editView string
}

func (r taskRow) FilterValue() string { return r.title }
func (r taskRow) Title() string       { return r.title }

// bindTask maps a task and its interaction state to a row. It has no side effects.
func bindTask(t model.Task, rs rowState) taskRow {
	return taskRow{
		id:       t.ID,
		title:    t.Title,
		done:     t.Completed,
		editing:  rs.editing,
		editView: rs.editView,
	}
}

// render rebuilds every visible row from the store. There is no diffing: the
// list is replaced wholesale on each mutation, filter change and edit keystroke.
func (m *appModel) render() {
	visible := m.state.Visible()
	selectedID := model.TaskID("")
	if row, ok := m.list.SelectedItem().(taskRow); ok {
		selectedID = row.id
	}

	items := make([]list.Item, 0, len(visible))
	sel := -1
	for i, t := range visible {
		rs := rowState{}
		if m.focus == focusEdit && t.ID == m.editingID {
			rs = rowState{editing: true, editView: m.editInput.View()}
		}
		if t.ID == selectedID {
			sel = i
		}
		items = append(items, bindTask(t, rs))
	}

	idx := m.list.Index()
	_ = m.list.SetItems(items)
	switch {
	case len(items) == 0:
	case sel >= 0:
		m.list.Select(sel)
	case idx >= len(items):
		m.list.Select(len(items) - 1)
	default:
		m.list.Select(idx)
	}
}

func (m appModel) emptyText() string {
	switch m.state.Filter() {
	case model.FilterActive:
		return "No active todos"
	case model.FilterCompleted:
		return "No completed todos"
	default:
		return "No todos yet. Press n to add one."
	}
}

package tui

import (
	"context"

	"todo-cli/internal/model"
	"todo-cli/internal/state"
	"todo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchAll starts a full-collection load. The spinner runs until loadedMsg arrives.
func (m *appModel) fetchAll() tea.Cmd {
	m.loading = true
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		tasks, err := svc.ListTodos(ctx)
		return loadedMsg{tasks: tasks, err: err}
	}
}

func (m *appModel) handleLoaded(msg loadedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		m.log.Error("load todos", "err", msg.err)
		return m.notifyErr("Failed to load todos", msg.err, loadNoticeTTL)
	}
	m.state.Apply(state.ReplaceAll(msg.tasks))
	m.render()
	return nil
}

// submitNewTask creates a task from the new-task input. Creation is not
// optimistic: the list only changes once the service returns the record.
func (m *appModel) submitNewTask() tea.Cmd {
	title, err := model.NormalizeTitle(m.newInput.Value())
	if err != nil {
		return m.notify(noticeError, "Title cannot be empty", noticeTTL)
	}
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		task, err := svc.CreateTodo(ctx, title)
		return createdMsg{task: task, err: err}
	}
}

func (m *appModel) handleCreated(msg createdMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("create todo", "err", msg.err)
		return m.notifyErr("Create failed", msg.err, noticeTTL)
	}
	m.state.Apply(state.Prepend(msg.task))
	m.newInput.SetValue("")
	m.render()
	return m.notify(noticeSuccess, "Added", noticeTTL)
}

// optimistic applies mut and redraws immediately, then runs call off the event
// loop. If call fails, handleRemoteDone applies the inverse.
func (m *appModel) optimistic(mut state.Mutation, call func(ctx context.Context) error, okText, failText string) tea.Cmd {
	undo := m.state.Apply(mut)
	m.render()
	ctx := m.ctx
	return func() tea.Msg {
		return remoteDoneMsg{undo: undo, okText: okText, failText: failText, err: call(ctx)}
	}
}

func (m *appModel) handleRemoteDone(msg remoteDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("remote update failed, rolling back", "op", msg.failText, "err", msg.err)
		m.state.Apply(msg.undo)
		m.render()
		return m.notifyErr(msg.failText, msg.err, noticeTTL)
	}
	return m.notify(noticeSuccess, msg.okText, noticeTTL)
}

func (m *appModel) startEdit() tea.Cmd {
	t, ok := m.selectedTask()
	if !ok {
		return nil
	}
	m.focus = focusEdit
	m.editingID = t.ID
	m.editInput.SetValue(t.Title)
	m.editInput.CursorEnd()
	cmd := m.editInput.Focus()
	m.render()
	return cmd
}

func (m *appModel) exitEdit() {
	m.focus = focusList
	m.editingID = ""
	m.editInput.Blur()
	m.editInput.SetValue("")
	m.render()
}

// finishEdit is shared by confirm and loss of focus.
func (m *appModel) finishEdit() tea.Cmd {
	id := m.editingID
	cur, ok := m.state.Get(id)
	if !ok {
		// Removed underneath us (e.g. a reload); nothing to persist.
		m.exitEdit()
		return nil
	}
	title, err := model.NormalizeTitle(m.editInput.Value())
	if err != nil {
		return m.notify(noticeError, "Title cannot be empty", noticeTTL)
	}
	if title == cur.Title {
		m.exitEdit()
		return nil
	}

	m.exitEdit()
	svc := m.svc
	return m.optimistic(state.SetTitle(id, title), func(ctx context.Context) error {
		_, err := svc.UpdateTodo(ctx, id, model.TaskPatch{Title: &title})
		return err
	}, "Saved", "Save failed")
}

// cancelEdit discards typed changes. No store mutation, no call.
func (m *appModel) cancelEdit() {
	m.exitEdit()
}

func (m *appModel) toggleCompleted() tea.Cmd {
	t, ok := m.selectedTask()
	if !ok {
		return nil
	}
	completed := !t.Completed
	okText := "Marked active"
	if completed {
		okText = "Marked done"
	}
	svc, id := m.svc, t.ID
	return m.optimistic(state.SetCompleted(id, completed), func(ctx context.Context) error {
		_, err := svc.UpdateTodo(ctx, id, model.TaskPatch{Completed: &completed})
		return err
	}, okText, "Update failed")
}

func (m *appModel) askDelete() {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	m.modal = modalConfirmDelete
	m.confirmFocus = confirmFocusCancel
	m.pendingDelete = t.ID
}

func (m *appModel) declineDelete() {
	m.modal = modalNone
	m.pendingDelete = ""
}

func (m *appModel) confirmDelete() tea.Cmd {
	id := m.pendingDelete
	m.modal = modalNone
	m.pendingDelete = ""
	if _, ok := m.state.Get(id); !ok {
		return nil
	}
	svc := m.svc
	return m.optimistic(state.Remove(id), func(ctx context.Context) error {
		return svc.DeleteTodo(ctx, id)
	}, "Deleted", "Delete failed")
}

func (m *appModel) setFilter(f model.Filter) {
	if f == m.state.Filter() {
		return
	}
	m.state.SetFilter(f)
	m.render()
	if err := m.prefs.SaveUIState(&store.UIState{Filter: string(f)}); err != nil {
		m.log.Warn("save ui state", "err", err)
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"todo-cli/internal/model"
)

func (m appModel) Init() tea.Cmd {
	if m.configErr != nil || m.svc == nil {
		return nil
	}
	load := m.fetchAll()
	return tea.Batch(m.spinner.Tick, load)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m, m.handleLoaded(msg)

	case createdMsg:
		return m, m.handleCreated(msg)

	case remoteDoneMsg:
		return m, m.handleRemoteDone(msg)

	case noticeDoneMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus: treat like leaving the inline editor.
		if m.focus == focusEdit {
			return m, m.finishEdit()
		}
		return m, nil

	case tea.KeyMsg:
		if m.configErr != nil {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.modal {
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modalHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Cancel) || msg.String() == "q" {
				m.modal = modalNone
			}
			return m, nil
		}
		switch m.focus {
		case focusEdit:
			return m.updateEdit(msg)
		case focusNewTask:
			return m.updateNewTask(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
	case key.Matches(msg, m.keys.PageUp):
		m.list.PrevPage()
	case key.Matches(msg, m.keys.PageDown):
		m.list.NextPage()
	case key.Matches(msg, m.keys.Home):
		m.list.Select(0)
	case key.Matches(msg, m.keys.End):
		if n := len(m.list.Items()); n > 0 {
			m.list.Select(n - 1)
		}
	case key.Matches(msg, m.keys.New):
		m.focus = focusNewTask
		return m, m.newInput.Focus()
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEdit()
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleCompleted()
	case key.Matches(msg, m.keys.Delete):
		m.askDelete()
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(model.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(model.FilterCompleted)
	case key.Matches(msg, m.keys.FilterCycle):
		m.setFilter(m.state.Filter().Next())
	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		load := m.fetchAll()
		return m, tea.Batch(m.spinner.Tick, load)
	case key.Matches(msg, m.keys.Help):
		m.modal = modalHelp
	}
	return m, nil
}

func (m appModel) updateNewTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitNewTask()
	case key.Matches(msg, m.keys.Cancel), msg.String() == "tab":
		m.focus = focusList
		m.newInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	return m, cmd
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Blur):
		return m, m.finishEdit()
	case key.Matches(msg, m.keys.Cancel):
		m.cancelEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.render()
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Yes):
		return m, m.confirmDelete()
	case key.Matches(msg, m.keys.No):
		m.declineDelete()
	case key.Matches(msg, m.keys.ModalFocus):
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case msg.String() == "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m, m.confirmDelete()
		}
		m.declineDelete()
	}
	return m, nil
}

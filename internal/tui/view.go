package tui

import (
	"fmt"
	"strings"

	"todo-cli/internal/docs"
	"todo-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.configErr != nil {
		return m.viewConfigError()
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	switch m.modal {
	case modalConfirmDelete:
		return m.placeCentered(m.viewConfirmDelete())
	case modalHelp:
		return m.placeCentered(m.viewHelp())
	}

	body := m.viewBody()
	if m.height > 0 {
		body = normalizePane(body, width, m.listHeight())
	}

	return strings.Join([]string{
		m.viewHeader(width),
		"",
		m.viewNewTask(width),
		body,
		m.viewNotice(width),
		m.help.View(m.keys),
	}, "\n")
}

func (m appModel) placeCentered(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) viewHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Render("Todos")

	var tabs []string
	for _, f := range model.Filters {
		label := filterLabel(f)
		if f == m.state.Filter() {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Padding(0, 1).
				Render(label))
		} else {
			tabs = append(tabs, styleMuted().Padding(0, 1).Render(label))
		}
	}

	left := title + "  " + strings.Join(tabs, "")
	right := styleMuted().Render(fmt.Sprintf("%s  %s", itemsLeft(m.state.Tasks()), m.baseURL))
	if m.loading {
		right = m.spinner.View() + " " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) viewNewTask(width int) string {
	if m.focus == focusNewTask {
		return renderInputLine(width, m.newInput.View())
	}
	return styleMuted().Render("+ press n to add a todo")
}

func (m appModel) viewBody() string {
	if len(m.list.Items()) == 0 {
		if m.loading {
			return m.spinner.View() + " Loading todos…"
		}
		return styleMuted().Render(m.emptyText())
	}
	return m.list.View()
}

func (m appModel) viewNotice(width int) string {
	if m.notice == nil {
		return ""
	}
	return normalizePane(noticeStyle(m.notice.level).Render(m.notice.text), width, 1)
}

func (m appModel) viewConfirmDelete() string {
	title := "this todo"
	if t, ok := m.state.Get(m.pendingDelete); ok {
		title = fmt.Sprintf("%q", t.Title)
	}
	return renderConfirmModal(m.width, "Delete todo", "Delete "+title+"?", "Delete", "Cancel", m.confirmFocus)
}

func (m appModel) viewHelp() string {
	md, _ := docs.Get("keys")
	bodyW := modalBodyWidth(m.width) - 2
	content := renderMarkdown(md, bodyW)
	if content == "" {
		content = m.help.FullHelpView(m.keys.FullHelp())
	}
	content += "\n\n" + styleMuted().Render("esc/?: close")
	return renderModalBox(m.width, "Help", content)
}

func (m appModel) viewConfigError() string {
	msg := strings.Join([]string{
		lipgloss.NewStyle().Foreground(colorError).Bold(true).Render(m.configErr.Error()),
		"",
		"Set the service URL with --base-url, TODO_API_BASE, or baseUrl in the config file.",
		"See `todo docs config`.",
		"",
		styleMuted().Render("q: quit"),
	}, "\n")
	return m.placeCentered(msg)
}

func filterLabel(f model.Filter) string {
	switch f {
	case model.FilterActive:
		return "Active"
	case model.FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func itemsLeft(tasks []model.Task) string {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

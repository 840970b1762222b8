package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
}

func newTaskDelegate() taskDelegate {
	return taskDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		done: styleMuted().Strikethrough(true),
	}
}

func (d taskDelegate) Height() int  { return 1 }
func (d taskDelegate) Spacing() int { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	row, ok := item.(taskRow)
	if !ok || contentW < 8 {
		fmt.Fprint(w, "")
		return
	}
	isSelected := index == m.Index()

	cursor := "  "
	if isSelected {
		cursor = "› "
	}
	box := "[ ] "
	if row.done {
		box = "[x] "
	}
	prefix := cursor + box
	prefixW := xansi.StringWidth(prefix)

	if row.editing {
		fmt.Fprint(w, prefix+renderInputLine(contentW-prefixW, row.editView))
		return
	}

	title := row.title
	titleW := contentW - prefixW
	if xansi.StringWidth(title) > titleW {
		title = xansi.Truncate(title, titleW, "…")
	}

	titleStyle := d.normal
	if row.done {
		titleStyle = d.done
	}
	line := prefix + titleStyle.Render(title)
	if lw := xansi.StringWidth(line); lw < contentW {
		line += strings.Repeat(" ", contentW-lw)
	}
	if isSelected {
		line = d.selected.Render(line)
	}
	fmt.Fprint(w, line)
}

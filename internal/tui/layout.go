package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// chromeHeight is the number of lines around the list: header, spacer, new-todo
// input, spacer, notice and help footer.
const chromeHeight = 6

func (m *appModel) resize() {
	w := m.width
	if w < 20 {
		w = 20
	}
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.help.Width = w
	m.newInput.Width = w - 4
	// Cursor, checkbox and padding.
	m.editInput.Width = w - 8
	m.render()
}

func (m appModel) listHeight() int {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

// normalizePane forces s to exactly width columns (ANSI-aware) and height lines,
// so the footer stays anchored however many rows the body renders.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

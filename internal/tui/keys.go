package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding

	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	FilterCycle     key.Binding

	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Inline inputs.
	Submit key.Binding
	Cancel key.Binding
	Blur   key.Binding

	// Confirm modal.
	Yes        key.Binding
	No         key.Binding
	ModalFocus key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		New:    key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),

		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterActive:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		FilterCycle:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),

		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Blur:   key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab", "leave")),

		Yes:        key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:         key.NewBinding(key.WithKeys("n", "N", "esc", "ctrl+g"), key.WithHelp("n/esc", "no")),
		ModalFocus: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Delete, k.FilterCycle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.New, k.Edit, k.Toggle, k.Delete},
		{k.FilterAll, k.FilterActive, k.FilterCompleted, k.FilterCycle},
		{k.Reload, k.Help, k.Quit},
	}
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive client and blocks until the user quits.
func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if opts.Context != nil {
		popts = append(popts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(newAppModel(opts), popts...).Run()
	return err
}

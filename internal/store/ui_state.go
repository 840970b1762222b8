package store

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

const uiStateFileName = "ui_state.json"

// UIState stores small, user-facing UI preferences restored on relaunch.
//
// It is best effort: a missing or corrupt file is treated as empty. Tasks
// themselves are never stored here.
type UIState struct {
	Version int `json:"version"`

	// Filter is one of: all|active|completed
	Filter string `json:"filter,omitempty"`
}

func (s Store) LoadUIState() (*UIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &UIState{Version: 1}, nil
	}
	b, err := os.ReadFile(s.path(uiStateFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &UIState{Version: 1}, nil
		}
		return nil, err
	}
	var st UIState
	if err := json.Unmarshal(b, &st); err != nil {
		return &UIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveUIState(st *UIState) error {
	if st == nil || strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(uiStateFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

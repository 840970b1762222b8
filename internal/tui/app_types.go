package tui

import (
	"time"

	"todo-cli/internal/model"
	"todo-cli/internal/state"
)

type focusArea int

const (
	focusList focusArea = iota
	focusNewTask
	focusEdit
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

const (
	noticeTTL     = 3 * time.Second
	loadNoticeTTL = 5 * time.Second
)

// loadedMsg carries the result of a full-collection fetch.
type loadedMsg struct {
	tasks []model.Task
	err   error
}

type createdMsg struct {
	task model.Task
	err  error
}

// remoteDoneMsg reports the outcome of the remote half of an optimistic update.
// undo is the inverse of the mutation that was applied before the call.
type remoteDoneMsg struct {
	undo     state.Mutation
	okText   string
	failText string
	err      error
}

type noticeDoneMsg struct{ seq int }

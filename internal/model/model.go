package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TaskID is the server-assigned identifier of a task.
//
// The remote service owns the id format. Some deployments hand out numeric ids,
// so the unmarshaller accepts JSON numbers and keeps their decimal text.
type TaskID string

func (id *TaskID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

func (id TaskID) String() string { return string(id) }

type Task struct {
	ID        TaskID `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskPatch is the body of an update call. Nil fields are left untouched.
type TaskPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (p TaskPatch) Empty() bool { return p.Title == nil && p.Completed == nil }

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted, "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("invalid filter: %q (expected all|active|completed)", s)
	}
}

// Match reports whether t is visible under f. Unknown filters match everything.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Apply returns the tasks visible under f, preserving order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NormalizeTitle trims s and rejects titles that are empty afterwards.
func NormalizeTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ValidationError{Field: "title", Reason: "cannot be empty"}
	}
	return s, nil
}

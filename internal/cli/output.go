package cli

import (
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/format"
	"todo-cli/internal/model"

	"github.com/charmbracelet/x/ansi"
)

// envelope is the shape of every command result: {data, meta, _hints}.
type envelope struct {
	Data  any            `json:"data"`
	Meta  map[string]any `json:"meta,omitempty"`
	Hints []string       `json:"_hints"`
}

func result(data any, hints ...string) envelope {
	if hints == nil {
		hints = []string{}
	}
	return envelope{Data: data, Hints: hints}
}

func (e envelope) withMeta(kv ...any) envelope {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Meta[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return e
}

// WriteText prints data for people: its own text form when it has one, YAML
// otherwise. Hints follow, one per line.
func (e envelope) WriteText(w io.Writer) error {
	if t, ok := e.Data.(format.Texter); ok {
		if err := t.WriteText(w); err != nil {
			return err
		}
	} else if e.Data != nil {
		if err := format.WriteText(w, e.Data); err != nil {
			return err
		}
	}
	for _, h := range e.Hints {
		if _, err := fmt.Fprintf(w, "hint: %s\n", h); err != nil {
			return err
		}
	}
	return nil
}

type taskList []model.Task

func (l taskList) WriteText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "(no todos)")
		return err
	}
	idW := 0
	for _, t := range l {
		if n := ansi.StringWidth(t.ID.String()); n > idW {
			idW = n
		}
	}
	for _, t := range l {
		if err := writeTaskLine(w, t, idW); err != nil {
			return err
		}
	}
	return nil
}

type taskView model.Task

func (t taskView) WriteText(w io.Writer) error {
	return writeTaskLine(w, model.Task(t), 0)
}

func writeTaskLine(w io.Writer, t model.Task, idW int) error {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	id := t.ID.String()
	if pad := idW - ansi.StringWidth(id); pad > 0 {
		id += strings.Repeat(" ", pad)
	}
	// Titles are remote data; strip control sequences before they reach a terminal.
	_, err := fmt.Fprintf(w, "%s %s  %s\n", box, id, ansi.Strip(t.Title))
	return err
}

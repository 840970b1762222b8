package cli

import (
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// markdownDoc renders through glamour in text mode and as {topic, markdown} otherwise.
type markdownDoc struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (d markdownDoc) WriteText(w io.Writer) error {
	// "notty" keeps the output free of escape codes so it pipes cleanly.
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("notty"), glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(d.Markdown)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return err
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, result(map[string]any{"topics": docs.Topics()}, "todo docs <topic>"))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `todo docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, result(markdownDoc{Topic: strings.ToLower(topic), Markdown: body}))
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	return cmd
}

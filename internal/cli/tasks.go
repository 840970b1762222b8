package cli

import (
	"bufio"
	"fmt"
	"strings"

	"todo-cli/internal/model"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.close()

			all, err := s.client.ListTodos(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			visible := f.Apply(all)

			left := 0
			for _, t := range all {
				if !t.Completed {
					left++
				}
			}
			hints := []string{}
			if len(all) == 0 {
				hints = append(hints, `todo add "<title>"`)
			}
			return writeOut(cmd, app, result(taskList(visible), hints...).withMeta(
				"filter", string(f),
				"count", len(visible),
				"total", len(all),
				"left", left,
			))
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "Which todos to show (all|active|completed)")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := model.NormalizeTitle(strings.Join(args, " "))
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.close()

			t, err := s.client.CreateTodo(cmd.Context(), title)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, result(taskView(t),
				fmt.Sprintf("todo edit %s <title>", t.ID),
				fmt.Sprintf("todo done %s", t.ID),
			))
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change a todo's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.TaskID(strings.TrimSpace(args[0]))
			title, err := model.NormalizeTitle(strings.Join(args[1:], " "))
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.close()

			return updateAndReport(cmd, app, s, id, model.TaskPatch{Title: &title})
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed (or active again with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.TaskID(strings.TrimSpace(args[0]))
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.close()

			completed := !undo
			return updateAndReport(cmd, app, s, id, model.TaskPatch{Completed: &completed})
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the todo active again")
	return cmd
}

// updateAndReport sends patch and prints the service's record, or the patch
// itself when the service answers without one.
func updateAndReport(cmd *cobra.Command, app *App, s *session, id model.TaskID, patch model.TaskPatch) error {
	updated, err := s.client.UpdateTodo(cmd.Context(), id, patch)
	if err != nil {
		return writeErr(cmd, err)
	}
	if updated != nil {
		return writeOut(cmd, app, result(taskView(*updated)))
	}
	data := map[string]any{"id": id}
	if patch.Title != nil {
		data["title"] = *patch.Title
	}
	if patch.Completed != nil {
		data["completed"] = *patch.Completed
	}
	return writeOut(cmd, app, result(data))
}

func newRmCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo (asks first unless --yes)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.TaskID(strings.TrimSpace(args[0]))
			s, err := openSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.close()

			if !yes && !confirm(cmd, fmt.Sprintf("Delete todo %s? [y/N] ", id)) {
				s.log.Info("delete declined", "id", id)
				return writeOut(cmd, app, result(map[string]any{"id": id, "deleted": false}).withMeta("declined", true))
			}
			if err := s.client.DeleteTodo(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, result(map[string]any{"id": id, "deleted": true}))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

// confirm prompts on stderr and reads one line from stdin. Anything but y/yes declines.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

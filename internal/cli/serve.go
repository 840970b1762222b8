package cli

import (
	"net"
	"path/filepath"
	"strings"

	"todo-cli/internal/logging"
	"todo-cli/internal/store"
	"todo-cli/internal/web"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr, dbPath, prefix string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local todo service backed by SQLite",
		Long: strings.TrimSpace(`
Run a local implementation of the todo service for development.

The client never needs it; it is a stand-in for the deployed service so the
TUI and subcommands can be tried end to end. See ` + "`todo docs serve`" + `.
`),
		Example: strings.TrimSpace(`
todo serve --addr 127.0.0.1:8787
todo --base-url http://127.0.0.1:8787
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer closer.Close()

			if strings.TrimSpace(dbPath) == "" {
				dbPath = filepath.Join(cfg.StateDir, store.DefaultTodoDBFileName)
			}
			db, err := store.OpenTodoDB(cmd.Context(), dbPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			srv, err := web.NewServer(web.ServerConfig{Addr: addr, Prefix: prefix}, db, log)
			if err != nil {
				return writeErr(cmd, err)
			}
			ln, err := net.Listen("tcp", srv.Addr())
			if err != nil {
				return writeErr(cmd, err)
			}

			url := "http://" + ln.Addr().String()
			if p := strings.Trim(strings.TrimSpace(prefix), "/"); p != "" {
				url += "/" + p
			}
			if err := writeOut(cmd, app, result(map[string]any{
				"url": url,
				"db":  dbPath,
			}, "todo --base-url "+url)); err != nil {
				_ = ln.Close()
				return err
			}
			return srv.Serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "Listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default <state dir>/"+store.DefaultTodoDBFileName+")")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Route prefix, e.g. /dev")
	return cmd
}

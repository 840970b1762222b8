// Package cli wires the `todo` command: the interactive client by default and
// scriptable subcommands for the same remote collection.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"todo-cli/internal/api"
	"todo-cli/internal/config"
	"todo-cli/internal/format"
	"todo-cli/internal/logging"
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	BaseURL    string
	PrettyJSON bool
	Format     string
	LogFile    string
	LogLevel   string
	Verbose    bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Terminal client for a remote todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive client
  todo --base-url http://127.0.0.1:8787

  # Scriptable commands
  todo list --filter active
  todo add "Buy milk"
  todo done 3

  # Try it against a local service
  todo serve --addr 127.0.0.1:8787
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive client.
			return runTUI(cmd, app)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", envOr("TODO_CONFIG", ""), "Config file (default "+config.DefaultPath()+")")
	pf.StringVar(&app.BaseURL, "base-url", envOr("TODO_API_BASE", ""), "Base URL of the todo service")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.Format, "format", envOr("TODO_FORMAT", "json"), "Output format (json|edn|text)")
	pf.StringVar(&app.LogFile, "log-file", envOr("TODO_LOG_FILE", ""), "Append logs to this file")
	pf.StringVar(&app.LogLevel, "log-level", envOr("TODO_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")
	pf.BoolVarP(&app.Verbose, "verbose", "v", false, "Log to stderr (subcommands only)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	// The alt screen owns the terminal: log to a file or nowhere.
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, nil)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closer.Close()

	opts := tui.Options{
		StateDir: cfg.StateDir,
		BaseURL:  cfg.BaseURL,
		Log:      log,
		Context:  cmd.Context(),
	}
	if cerr := cfg.Validate(); cerr != nil {
		log.Error("configuration", "err", cerr)
		opts.ConfigErr = cerr
	} else {
		opts.Service = api.New(cfg.BaseURL, log)
	}
	return tui.Run(opts)
}

func loadConfig(app *App) (*config.Config, error) {
	return config.Load(app.ConfigPath, config.Config{
		BaseURL:  app.BaseURL,
		LogFile:  app.LogFile,
		LogLevel: app.LogLevel,
	})
}

// session is what a remote subcommand needs: a validated config, a logger and
// a client. close must run before the command returns.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	client *api.Client
	close  func() error
}

func openSession(cmd *cobra.Command, app *App) (*session, error) {
	cfg, err := loadConfig(app)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var fallback io.Writer
	if app.Verbose {
		fallback = cmd.ErrOrStderr()
	}
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel, fallback)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		log:    log,
		client: api.New(cfg.BaseURL, log),
		close:  closer.Close,
	}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

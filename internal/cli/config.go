package cli

import (
	"io"

	"todo-cli/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configView prints as the config file would look in text mode.
type configView struct {
	*config.Config
}

func (c configView) WriteText(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Config); err != nil {
		return err
	}
	return enc.Close()
}

func newConfigCmd(app *App) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration (and optionally save it)",
		Long: `Show the configuration after merging the config file, environment and flags.

With --save, the merged values are written back to the config file, e.g.:
  todo config --base-url http://127.0.0.1:8787 --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			path := app.ConfigPath
			if path == "" {
				path = config.DefaultPath()
			}

			verr := cfg.Validate()
			if save {
				if verr != nil {
					return writeErr(cmd, verr)
				}
				if err := config.Save(path, *cfg); err != nil {
					return writeErr(cmd, err)
				}
				cfg.Path = path
			}

			env := result(configView{cfg}).withMeta("path", path, "valid", verr == nil, "saved", save)
			if verr != nil {
				env = env.withMeta("error", verr.Error())
				env.Hints = append(env.Hints, "todo config --base-url <url> --save", "todo docs config")
			}
			return writeOut(cmd, app, env)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Write the resolved configuration to the config file")
	return cmd
}

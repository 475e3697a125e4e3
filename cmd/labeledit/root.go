package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"labeledit/config"
	"labeledit/diagram"
	"labeledit/editor"
)

// app carries the persistent flags and the state built from them before
// each command runs.
type app struct {
	configPath string
	readOnly   bool
	logLevel   string
	logFile    string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "labeledit [file]",
		Short:        "Edit diagram labels in the terminal",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Edit a diagram; start typing on a selected node to rename it
  labeledit flow.json

  # Replay a key script without a terminal and save the result
  labeledit replay flow.json --script rename.jsonc -o renamed.json

  # Ask what a key press would do
  labeledit decide flow.json --key F2 --select node:1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(a, path)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if a.closeLog != nil {
			return a.closeLog()
		}
		return nil
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to YAML config (default: $"+config.EnvVar+")")
	flags.BoolVar(&a.readOnly, "read-only", false, "Open diagrams read-only")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newReplayCmd(a))
	cmd.AddCommand(newDecideCmd(a))
	cmd.AddCommand(newCharsCmd())

	return cmd
}

// setup loads the config, applies flag overrides and builds the logger.
// The interactive editor owns the terminal, so it only logs to a file.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("read-only") {
		cfg.ReadOnly = a.readOnly
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var fallback io.Writer = cmd.ErrOrStderr()
	if isInteractive(cmd) {
		fallback = nil
	}
	logger, closeLog, err := cfg.NewLogger(fallback)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.closeLog = closeLog
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "edit" || !cmd.HasParent()
}

// openEditor loads path into a new editor. An empty path starts an empty
// untitled diagram.
func (a *app) openEditor(path string) (*editor.Editor, error) {
	d := &diagram.Diagram{}
	if path != "" {
		var err error
		d, err = diagram.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	a.logger.Debug("diagram loaded", "path", path, "nodes", len(d.Nodes), "connections", len(d.Connections))
	return editor.NewEditor(d, editor.Options{
		Logger:      a.logger,
		ReadOnly:    a.cfg.ReadOnly,
		HistorySize: a.cfg.History,
	}), nil
}

func selectAll(ed *editor.Editor, refs []string) error {
	for _, s := range refs {
		ref, err := editor.ParseElementRef(s)
		if err != nil {
			return err
		}
		if err := ed.Select(ref, true); err != nil {
			return fmt.Errorf("select %s: %w", s, err)
		}
	}
	return nil
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"labeledit/diagram"
	"labeledit/terminal"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Open a diagram in the interactive editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(a, args[0])
		},
	}
}

func runEdit(a *app, path string) error {
	ed, err := a.openEditor(path)
	if err != nil {
		return err
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	save := func(d *diagram.Diagram) error {
		if path == "" {
			return errors.New("no file name")
		}
		return diagram.WriteFile(path, d)
	}
	return terminal.Run(screen, ed, terminal.Options{
		Theme:  a.cfg.Theme,
		Logger: a.logger,
		Save:   save,
	})
}

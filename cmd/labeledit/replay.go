package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labeledit/diagram"
	"labeledit/script"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		scriptPath string
		output     string
		realtime   bool
		example    bool
	)

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a key script against a diagram without a terminal",
		Args: func(cmd *cobra.Command, args []string) error {
			if example {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if example {
				_, err := fmt.Fprintln(out, script.Example())
				return err
			}
			if scriptPath == "" {
				return fmt.Errorf("--script is required")
			}

			s, err := script.LoadScript(scriptPath)
			if err != nil {
				return err
			}
			ed, err := a.openEditor(args[0])
			if err != nil {
				return err
			}

			player := script.NewPlayer(a.logger)
			player.Realtime = realtime
			t, err := player.Play(cmd.Context(), s, ed)
			if err != nil {
				return err
			}
			a.logger.Info("replay finished", "script", s.Name, "keys", len(t.Steps), "saves", t.Saves)

			if _, err := fmt.Fprint(out, ed.Render()); err != nil {
				return err
			}
			if output != "" {
				if err := diagram.WriteFile(output, ed.Diagram()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Key script (JSON with comments)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the edited diagram here")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Honour the delays in the script")
	cmd.Flags().BoolVar(&example, "example", false, "Print an example script and exit")
	return cmd
}

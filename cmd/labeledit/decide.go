package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"labeledit/directedit"
	"labeledit/script"
)

// decision is the JSON form of a directedit.Result.
type decision struct {
	Key            string `json:"key"`
	Activate       bool   `json:"activate"`
	PreventDefault bool   `json:"preventDefault"`
	Trigger        string `json:"trigger,omitempty"`
	TargetLabelID  string `json:"targetLabelId,omitempty"`
	Seed           string `json:"seed,omitempty"`
}

func newDecideCmd(a *app) *cobra.Command {
	var (
		key       string
		selected  []string
		textInput bool
	)

	cmd := &cobra.Command{
		Use:   "decide <file>",
		Short: "Show whether a key press would start a direct edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := script.ParseKey(key)
			if err != nil {
				return err
			}
			ed, err := a.openEditor(args[0])
			if err != nil {
				return err
			}
			if err := selectAll(ed, selected); err != nil {
				return err
			}

			res := directedit.Decide(k.DirectEditEvent(textInput), ed.Snapshot())
			out := decision{
				Key:            k.String(),
				Activate:       res.Activate,
				PreventDefault: res.PreventDefault,
			}
			if res.Activate {
				out.Trigger = res.Command.Trigger.String()
				out.TargetLabelID = res.Command.TargetLabelID
				if res.Command.HasSeed {
					out.Seed = string(res.Command.Seed)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", `Key to decide on, e.g. "a", "F2", "Shift+Tab"`)
	cmd.Flags().StringSliceVar(&selected, "select", nil, "Elements to select first (node:ID, edge:ID)")
	cmd.Flags().BoolVar(&textInput, "text-input", false, "Pretend a text control has focus")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

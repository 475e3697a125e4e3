package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labeledit/directedit"
)

func newCharsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chars",
		Short: "List the characters that start a direct edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(directedit.AcceptedChars()))
			return err
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <revision>",
		Short: "Show the content of a stored object",
		Long: `Show the content of a stored object.
The revision may be a full 40-character identifier or an unambiguous
prefix of at least 4 characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}
			return catObject(repo, args[0], cmd.OutOrStdout())
		},
	}
}

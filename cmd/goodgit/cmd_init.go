package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodgit/goodgit/pkg/repository/gitrepo"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path] [branch]",
		Short: "Initialize a new empty repository",
		Long: `Initialize a new empty repository.
Creates the storage directory with objects/, refs/heads/, and a HEAD
pointing at the given branch (default "master"). Safe to re-run.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			branch := gitrepo.DefaultBranch
			if len(args) > 0 {
				path = args[0]
			}
			if len(args) > 1 {
				branch = args[1]
			}

			repo := gitrepo.New(path)
			if err := repo.Init(branch); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized repository in %s with branch %s\n",
				repo.GitDir(), branch)
			return nil
		},
	}
}

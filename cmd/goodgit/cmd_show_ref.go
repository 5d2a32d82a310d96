package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goodgit/goodgit/pkg/refs"
	"github.com/goodgit/goodgit/pkg/repository/gitrepo"
)

func newShowRefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-ref",
		Short: "List references and their identifiers",
		Long: `List every reference under the heads, remotes, and tags namespaces
with the identifier it resolves to, sorted by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}
			return showRefs(repo, cmd.OutOrStdout())
		},
	}
}

// showRefs writes one "<identifier> <name>" line per reference.
func showRefs(repo *gitrepo.Repo, w io.Writer) error {
	resolver := refs.NewResolver(repo.GitDir())

	list, err := resolver.List()
	if err != nil {
		return err
	}

	for _, ref := range list {
		fmt.Fprintf(w, "%s %s\n", ref.Hash, ref.Name)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goodgit/goodgit/pkg/history"
	"github.com/goodgit/goodgit/pkg/repository/gitrepo"
)

func newLogCmd() *cobra.Command {
	var useTable bool

	cmd := &cobra.Command{
		Use:   "log <revision>",
		Short: "Show the commit history starting from a revision",
		Long: `Show the commit history starting from a revision, following each
commit's parent until the root commit. Pointing log at a tree or blob
produces no output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			if useTable {
				return logHistoryTable(repo, args[0])
			}
			return logHistory(repo, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")

	return cmd
}

// logHistory writes one line per commit:
// <first-6-hex> - <first message line> - "<committer>"
func logHistory(repo *gitrepo.Repo, rev string, w io.Writer) error {
	walker := history.NewWalker(newResolver(repo), rev)

	for {
		entry, err := walker.Next()
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		fmt.Fprintf(w, "%s - %s - \"%s\"\n", entry.Hash.Short(6), entry.Summary, entry.Committer)
	}
}

// logHistoryTable renders the same walk as a table.
func logHistoryTable(repo *gitrepo.Repo, rev string) error {
	entries, err := history.NewWalker(newResolver(repo), rev).All()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	fmt.Println(renderHeader(" Commit History "))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Commit", "Committer", "Message")
	for _, entry := range entries {
		table.Append(entry.Hash.Short(8), entry.Committer, entry.Summary)
	}
	table.Render()

	return nil
}

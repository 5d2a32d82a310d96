package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/goodgit/goodgit/pkg/objects/blob"
	"github.com/goodgit/goodgit/pkg/objects/commit"
	"github.com/goodgit/goodgit/pkg/objects/tree"
	"github.com/goodgit/goodgit/pkg/repository/gitrepo"
	"github.com/goodgit/goodgit/pkg/revision"
	"github.com/goodgit/goodgit/pkg/store"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5F5FFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

// findRepository finds the repository starting from the current directory.
func findRepository() (*gitrepo.Repo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return gitrepo.Discover(cwd)
}

// newResolver builds the revision resolver for a repository.
func newResolver(repo *gitrepo.Repo) *revision.Resolver {
	return revision.NewResolver(store.NewFileObjectStore(repo.ObjectsDir()))
}

func renderHeader(title string) string {
	return headerStyle.Render(title)
}

func renderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}

// catObject resolves a revision and writes the object's formatted
// representation: raw content for blobs, one line per entry for trees,
// headers plus message for commits.
func catObject(repo *gitrepo.Repo, rev string, w io.Writer) error {
	_, obj, err := newResolver(repo).Resolve(rev)
	if err != nil {
		return err
	}

	switch o := obj.(type) {
	case *blob.Blob:
		content, _ := o.Content()
		if !utf8.Valid(content) {
			return fmt.Errorf("blob content is not valid UTF-8")
		}
		fmt.Fprintf(w, "%s\n", content)
	case *tree.Tree:
		for _, entry := range o.Entries() {
			fmt.Fprintf(w, "%6s %4s %-43s %s\n",
				entry.Mode, entry.Mode.TypeLabel(), entry.Hash, entry.Name)
		}
	case *commit.Commit:
		fmt.Fprintf(w, "tree: %s\n", o.Tree)
		fmt.Fprintf(w, "parent: %s\n", o.Parent)
		fmt.Fprintf(w, "author: %s\n", o.Author)
		fmt.Fprintf(w, "committer: %s\n", o.Committer)
		fmt.Fprintf(w, "\n%s\n", o.Message)
	default:
		return fmt.Errorf("unsupported object type %q", obj.Type())
	}

	return nil
}

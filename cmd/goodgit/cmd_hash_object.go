package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodgit/goodgit/pkg/objects/blob"
	"github.com/goodgit/goodgit/pkg/store"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [file]",
		Short: "Compute the object identifier of a file's content",
		Long: `Compute the identifier a file's content would be stored under as a
blob. With -w the blob is written to the object store. Reads stdin
when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reader io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				reader = f
			}

			data, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			b := blob.NewBlob(data)
			if write {
				repo, err := findRepository()
				if err != nil {
					return err
				}
				fos := store.NewFileObjectStore(repo.ObjectsDir())
				if _, err := fos.WriteBlob(data); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), b.Hash())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the blob to the object store")

	return cmd
}

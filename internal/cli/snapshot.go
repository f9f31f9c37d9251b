package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purefunctor/pixels/internal/infra/snapstore"
	"github.com/purefunctor/pixels/internal/usecase"
)

func snapshotCmd(rf *rootFlags) *cobra.Command {
	var list bool
	var pattern string

	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Save a PNG snapshot of the canvas, or list existing ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			store := snapstore.NewPNGStore(app.root, app.cfg)

			if list {
				names, err := store.List(pattern)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			id, canvas, err := usecase.NewSnapshotCanvas(app.client, store).Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s (%dx%d)\n", id, canvas.Size().Width, canvas.Size().Height)
			return nil
		},
	}

	c.Flags().BoolVar(&list, "list", false, "List snapshots instead of taking one")
	c.Flags().StringVar(&pattern, "pattern", "", "Glob pattern for --list (e.g. 20240601*.png)")
	return c
}

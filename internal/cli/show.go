package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/purefunctor/pixels/internal/ui/render"
	"github.com/purefunctor/pixels/internal/usecase"
)

func showCmd(rf *rootFlags) *cobra.Command {
	var width int
	var out string

	c := &cobra.Command{
		Use:   "show",
		Short: "Render the canvas in the terminal or write it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			canvas, err := usecase.NewFetchCanvas(app.client).Execute(cmd.Context())
			if err != nil {
				return err
			}

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()

				if err := png.Encode(f, canvas.ToImage()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, canvas.Size().Width, canvas.Size().Height)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Canvas(canvas, width))
			return nil
		},
	}

	c.Flags().IntVar(&width, "width", 120, "Maximum terminal cells per line (0 disables downsampling)")
	c.Flags().StringVar(&out, "out", "", "Write the canvas to a PNG file instead of the terminal")
	return c
}

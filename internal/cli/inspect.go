package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/usecase"
)

func inspectCmd(rf *rootFlags) *cobra.Command {
	var format string
	var concurrency int

	c := &cobra.Command{
		Use:   "inspect <x,y> [<x,y>...]",
		Short: "Read several pixels concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]domain.Point, 0, len(args))
			for _, arg := range args {
				pt, err := parsePoint(arg)
				if err != nil {
					return err
				}
				points = append(points, pt)
			}

			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewInspectPixels(app.client, usecase.WithConcurrency(concurrency))
			pixels, err := uc.Execute(cmd.Context(), points)
			if err != nil {
				return err
			}

			return emit(os.Stdout, pixels, format, "", func(w io.Writer) {
				for _, p := range pixels {
					fmt.Fprintf(w, "(%d, %d) #%s\n", p.X, p.Y, p.RGB.Hex())
				}
			})
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&concurrency, "concurrency", 4, "Maximum reads in flight")
	return c
}

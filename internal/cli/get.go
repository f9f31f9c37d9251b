package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func getCmd(rf *rootFlags) *cobra.Command {
	var format string
	var filter string

	c := &cobra.Command{
		Use:   "get <x> <y>",
		Short: "Read a single pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord(args[0], "x")
			if err != nil {
				return err
			}
			y, err := parseCoord(args[1], "y")
			if err != nil {
				return err
			}

			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			p, err := app.client.Pixel(cmd.Context(), x, y)
			if err != nil {
				return err
			}

			return emit(os.Stdout, p, format, filter, func(w io.Writer) {
				fmt.Fprintf(w, "(%d, %d) #%s\n", p.X, p.Y, p.RGB.Hex())
			})
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&filter, "filter", "", "JSONPath expression applied to the JSON output")
	return c
}

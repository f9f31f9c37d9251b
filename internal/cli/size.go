package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func sizeCmd(rf *rootFlags) *cobra.Command {
	var format string
	var filter string

	c := &cobra.Command{
		Use:   "size",
		Short: "Print the canvas size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			size, err := app.client.Size(cmd.Context())
			if err != nil {
				return err
			}

			return emit(os.Stdout, size, format, filter, func(w io.Writer) {
				fmt.Fprintf(w, "%dx%d\n", size.Width, size.Height)
			})
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&filter, "filter", "", "JSONPath expression applied to the JSON output")
	return c
}

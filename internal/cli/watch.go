package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/purefunctor/pixels/internal/infra/logger"
	"github.com/purefunctor/pixels/internal/ui/tui"
)

func watchCmd(rf *rootFlags) *cobra.Command {
	var interval time.Duration

	c := &cobra.Command{
		Use:   "watch",
		Short: "Watch the canvas live in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			return tui.Run(tui.Deps{
				API:      app.client,
				Limits:   app.client,
				Interval: interval,
				Logger:   logger.L(),
			})
		},
	}

	c.Flags().DurationVar(&interval, "interval", 30*time.Second, "Time between canvas refreshes")
	return c
}

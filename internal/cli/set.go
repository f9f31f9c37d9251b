package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/usecase"
)

func setCmd(rf *rootFlags) *cobra.Command {
	var verify bool

	c := &cobra.Command{
		Use:   "set <x> <y> <color>",
		Short: "Place a pixel on the canvas",
		Long:  "Place a pixel. Colors are hex strings (ff00aa, #ff00aa) or CSS-style values (rgb(255,0,170)).",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord(args[0], "x")
			if err != nil {
				return err
			}
			y, err := parseCoord(args[1], "y")
			if err != nil {
				return err
			}
			rgb, err := parseColor(args[2])
			if err != nil {
				return err
			}

			app, err := rf.deps()
			if err != nil {
				return err
			}
			defer app.close()

			uc := usecase.NewPlacePixel(app.client, usecase.WithVerify(verify))
			report, err := uc.Execute(cmd.Context(), domain.Pixel{X: x, Y: y, RGB: rgb})
			if err != nil {
				return err
			}

			if report.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), report.Message)
			}
			if report.Checked {
				if !report.Verified {
					return fmt.Errorf("verification failed: canvas shows #%s at (%d, %d)", report.Observed.Hex(), x, y)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "verified: (%d, %d) is #%s\n", x, y, rgb.Hex())
			}
			return nil
		},
	}

	c.Flags().BoolVar(&verify, "verify", false, "Read the pixel back after placing it")
	return c
}

// parseColor accepts the API's bare hex form first, then falls back to
// CSS-style color strings.
func parseColor(s string) (domain.RGB, error) {
	s = strings.TrimSpace(s)

	if rgb, err := domain.ParseRGB(s); err == nil {
		return rgb, nil
	}

	if c, err := colors.Parse(s); err == nil {
		rgb := c.ToRGB()
		return domain.RGB{R: rgb.R, G: rgb.G, B: rgb.B}, nil
	}

	return domain.RGB{}, fmt.Errorf("invalid color %q: expected hex (ff00aa) or CSS-style (rgb(255,0,170))", s)
}

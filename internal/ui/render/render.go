// Package render draws a canvas into a terminal-friendly string.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/purefunctor/pixels/internal/domain"
)

// Canvas renders the canvas with half-block glyphs: each terminal cell shows
// two vertically stacked pixels via foreground/background colors. When
// maxWidth is positive and smaller than the canvas width, the canvas is
// downsampled by nearest-neighbor to fit.
func Canvas(c domain.Canvas, maxWidth int) string {
	size := c.Size()
	if size.Width == 0 || size.Height == 0 {
		return ""
	}

	step := 1
	if maxWidth > 0 && size.Width > maxWidth {
		step = (size.Width + maxWidth - 1) / maxWidth
	}

	var b strings.Builder
	for y := 0; y < size.Height; y += 2 * step {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < size.Width; x += step {
			top, _ := c.At(x, y)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + top.Hex()))
			if bottom, ok := c.At(x, y+step); ok {
				style = style.Background(lipgloss.Color("#" + bottom.Hex()))
			}
			b.WriteString(style.Render("▀"))
		}
	}
	return b.String()
}

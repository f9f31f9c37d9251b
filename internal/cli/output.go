package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/purefunctor/pixels/internal/domain"
)

// emit writes v according to the selected output format. A non-empty filter
// takes precedence and prints the JSONPath result as a bare string.
func emit(w io.Writer, v any, format, filter string, pretty func(io.Writer)) error {
	if strings.TrimSpace(filter) != "" {
		s, err := applyFilter(v, filter)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
		return nil
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "pretty", "":
		pretty(w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func parseCoord(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", name, s)
	}
	return n, nil
}

// parsePoint parses an "x,y" argument.
func parsePoint(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := parseCoord(parts[0], "x")
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := parseCoord(parts[1], "y")
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return domain.Point{X: x, Y: y}, nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var hexColor = regexp.MustCompile(`^#?([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)

// RGB is a 24-bit color in the canvas wire format ("rrggbb").
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseRGB parses a hex color string. A leading '#' is optional and exactly
// six hex digits are required.
func ParseRGB(s string) (RGB, error) {
	m := hexColor.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, &OpError{
			Op:   "domain.parse_rgb",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("invalid hex color %q: %w", s, ErrInvalidInput),
		}
	}

	// The pattern guarantees each group is two hex digits.
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Hex formats the color as six lowercase hex digits, without a '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *RGB) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Point addresses a single canvas cell.
type Point struct {
	X int
	Y int
}

// Pixel is one colored cell, in the shape used by /get_pixel and /set_pixel.
type Pixel struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	RGB RGB `json:"rgb"`
}

// CanvasSize is the canvas extent reported by /get_size.
type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether (x, y) lies on the canvas.
func (s CanvasSize) Contains(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Area is the number of pixels on the canvas.
func (s CanvasSize) Area() int {
	return s.Width * s.Height
}

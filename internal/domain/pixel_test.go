package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "lowercase", in: "1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "uppercase", in: "FF00AA", want: RGB{R: 0xff, G: 0x00, B: 0xaa}},
		{name: "leading hash", in: "#0f0f0f", want: RGB{R: 0x0f, G: 0x0f, B: 0x0f}},
		{name: "too short", in: "1a2b3", wantErr: true},
		{name: "too long", in: "1a2b3c4d", wantErr: true},
		{name: "non hex", in: "zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRGB(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsKind(err, KindInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	c := RGB{R: 0xde, G: 0xad, B: 0x42}

	parsed, err := ParseRGB(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestPixelJSONWireShape(t *testing.T) {
	p := Pixel{X: 3, Y: 7, RGB: RGB{R: 0xff, G: 0x00, B: 0x10}}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":3,"y":7,"rgb":"ff0010"}`, string(b))

	var back Pixel
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, p, back)
}

func TestCanvasSizeContains(t *testing.T) {
	s := CanvasSize{Width: 4, Height: 2}

	assert.True(t, s.Contains(0, 0))
	assert.True(t, s.Contains(3, 1))
	assert.False(t, s.Contains(4, 0))
	assert.False(t, s.Contains(0, 2))
	assert.False(t, s.Contains(-1, 0))
	assert.Equal(t, 8, s.Area())
}

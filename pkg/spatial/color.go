package spatial

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with float32 channels in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB returns a Color from its channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// White is the color with all channels at full intensity.
var White = Color{R: 1, G: 1, B: 1}

// Set assigns all three channels at once.
func (c *Color) Set(r, g, b float32) {
	c.R = r
	c.G = g
	c.B = b
}

// SetHex parses a "#rrggbb" or "rrggbb" hex string into c.
func (c *Color) SetHex(hex string) error {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid hex color %q", hex)
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	c.R = float32((value>>16)&0xff) / 255
	c.G = float32((value>>8)&0xff) / 255
	c.B = float32(value&0xff) / 255
	return nil
}

// Hex returns the "#rrggbb" representation of c, clamping channels to [0, 1].
func (c Color) Hex() string {
	clamped := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamped.R*255+0.5),
		uint8(clamped.G*255+0.5),
		uint8(clamped.B*255+0.5))
}

// Add returns the channel-wise sum of c and other.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the channel-wise product of c and other.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// MulScalar returns c with every channel scaled by s.
func (c Color) MulScalar(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Clamped returns c with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B)}
}

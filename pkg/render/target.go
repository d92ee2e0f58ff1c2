package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/go-scenic/scenic/pkg/spatial"
)

// Target is a CPU pixel surface renders draw into.
type Target struct {
	img *image.RGBA
}

// NewTarget allocates a surface of the given size. Dimensions clamp to 1.
func NewTarget(width, height int) *Target {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Target{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the surface width in pixels.
func (t *Target) Width() int { return t.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (t *Target) Height() int { return t.img.Bounds().Dy() }

// Image exposes the underlying pixels.
func (t *Target) Image() *image.RGBA { return t.img }

// Resize reallocates the surface. A no-op when the size is unchanged.
func (t *Target) Resize(width, height int) {
	if width == t.Width() && height == t.Height() {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the surface with an opaque color.
func (t *Target) Clear(c spatial.Color) {
	fill := toRGBA(c, 1)
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, fill)
		}
	}
}

// EncodePNG writes the surface as a PNG stream.
func (t *Target) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.img); err != nil {
		return fmt.Errorf("encoding render target: %w", err)
	}
	return nil
}

// toRGBA converts a linear color and opacity to 8-bit RGBA with clamping.
func toRGBA(c spatial.Color, opacity float32) color.RGBA {
	clamped := c.Clamped()
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(clamped.R*opacity*255 + 0.5),
		G: uint8(clamped.G*opacity*255 + 0.5),
		B: uint8(clamped.B*opacity*255 + 0.5),
		A: uint8(opacity*255 + 0.5),
	}
}

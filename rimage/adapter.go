package rimage

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromGray16 copies a standard library *image.Gray16 into a new Grey image,
// the usual entry point for images decoded off disk.
func FromGray16(src *image.Gray16) (*Grey, error) {
	b := src.Bounds()
	g, err := NewGrey(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := src.Gray16At(x, y).Y
			g.Put(y-b.Min.Y, x-b.Min.X, v)
		}
	}
	return g, nil
}

// Put is an unchecked row/col setter, exposed for adapter code that has
// already validated bounds via the source image's own Bounds().
func (g *Grey) Put(row, col int, v uint16) {
	g.pix.Put(row, col, v)
}

// ToGray16 renders the image into a standard library *image.Gray16, for
// writing disparity maps or debug renders out to disk with the standard
// image/png or image/jpeg encoders.
func (g *Grey) ToGray16() *image.Gray16 {
	dst := image.NewGray16(image.Rect(0, 0, g.Width(), g.Height()))
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			dst.SetGray16(col, row, color.Gray16{Y: g.Get(row, col)})
		}
	}
	return dst
}

// AnnotateLabel stamps a short ASCII label into the top-left corner of a
// rendered debug image, using the fixed basicfont face so no font asset
// needs shipping alongside the binary. Intended for frame-identifying
// overlays on dumped disparity renders, not for anything the matching
// algorithm itself reads back.
func AnnotateLabel(dst *image.Gray16, label string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray16{Y: 0xFFFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, 12),
	}
	d.DrawString(label)
}

package frame

import (
	"fmt"

	"termpix/device"
	"termpix/geometry"
)

// Pixel is what occupies one cell: a glyph and its style.
type Pixel struct {
	Glyph rune
	Style device.Style
}

type Cell struct {
	At geometry.Location
	Pixel
}

// Frame lists one Cell per location of a rectangle, row-major.
type Frame []Cell

// Source answers what to paint at a location. ok == false means the
// location has no content of its own and the fallback pixel is used.
type Source interface {
	PixelAt(loc geometry.Location) (pixel Pixel, ok bool)
}

type SourceFunc func(loc geometry.Location) (Pixel, bool)

func (f SourceFunc) PixelAt(loc geometry.Location) (Pixel, bool) {
	return f(loc)
}

// Query adapts separate glyph and style lookups into a Source.
// A nil Style paints with the zero style.
type Query struct {
	Glyph func(loc geometry.Location) (rune, bool)
	Style func(loc geometry.Location) device.Style
}

func (q Query) PixelAt(loc geometry.Location) (Pixel, bool) {
	glyph, ok := q.Glyph(loc)
	if !ok {
		return Pixel{}, false
	}
	pixel := Pixel{Glyph: glyph}
	if q.Style != nil {
		pixel.Style = q.Style(loc)
	}
	return pixel, true
}

// Blank is the default fallback: a space in the terminal's default colors.
var Blank = Pixel{Glyph: ' '}

// Produce enumerates every location of r.
func Produce(r geometry.Rect, src Source, fallback Pixel) Frame {
	return AppendFrame(make(Frame, 0, r.Area()), r, src, fallback)
}

// AppendFrame appends the frame of r to dst[:0], reusing its storage.
func AppendFrame(dst Frame, r geometry.Rect, src Source, fallback Pixel) Frame {
	r.Validate()
	dst = dst[:0]
	tl, br := r.TopLeft(), r.BottomRight()
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			loc := geometry.Location{X: x, Y: y}
			pixel, ok := src.PixelAt(loc)
			if !ok {
				pixel = fallback
			}
			dst = append(dst, Cell{At: loc, Pixel: pixel})
		}
	}
	return dst
}

func (p Pixel) String() string {
	return fmt.Sprintf("Pixel{%q, %s}", p.Glyph, p.Style)
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell{%s, %q, %s}", c.At, c.Glyph, c.Style)
}

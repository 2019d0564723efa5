package widgets

import (
	"fmt"
	"strings"

	"termpix/device"
	"termpix/frame"
	"termpix/geometry"
)

type BorderKind int

const (
	Simple BorderKind = iota
	Double
	Rounded
	ASCII
)

// border glyphs: top-left, top-right, bottom-left, bottom-right, vertical, horizontal
var borderGlyphs = map[BorderKind][6]rune{
	Simple:  {'┌', '┐', '└', '┘', '│', '─'},
	Double:  {'╔', '╗', '╚', '╝', '║', '═'},
	Rounded: {'╭', '╮', '╰', '╯', '│', '─'},
	ASCII:   {'+', '+', '+', '+', '|', '-'},
}

// BorderGlyph returns the border glyph at loc for the rectangle r.
// ok is false for locations that are not on r's boundary.
func BorderGlyph(r geometry.Rect, loc geometry.Location, kind BorderKind) (glyph rune, ok bool) {
	if !r.Covers(loc) {
		return 0, false
	}
	glyphs, found := borderGlyphs[kind]
	if !found {
		glyphs = borderGlyphs[Simple]
	}
	switch {
	case r.IsTopLeftCorner(loc):
		return glyphs[0], true
	case r.IsTopRightCorner(loc):
		return glyphs[1], true
	case r.IsBottomLeftCorner(loc):
		return glyphs[2], true
	case r.IsBottomRightCorner(loc):
		return glyphs[3], true
	case r.IsLeftBoundary(loc) || r.IsRightBoundary(loc):
		return glyphs[4], true
	case r.IsTopBoundary(loc) || r.IsBottomBoundary(loc):
		return glyphs[5], true
	}
	return 0, false
}

type bordered struct {
	geometry geometry.Geometry
	kind     BorderKind
	style    device.Style
	inner    frame.Source
}

// Bordered draws a border on the boundary of g and defers everything else
// to inner, which may be nil. The rectangle is read from g on every call so
// a moving widget drags its border along.
func Bordered(g geometry.Geometry, kind BorderKind, style device.Style, inner frame.Source) Widget {
	return bordered{geometry: g, kind: kind, style: style, inner: inner}
}

func (b bordered) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	r := geometry.RectOf(b.geometry)
	if !r.Covers(loc) {
		return frame.Pixel{}, false
	}
	if glyph, ok := BorderGlyph(r, loc, b.kind); ok {
		return frame.Pixel{Glyph: glyph, Style: b.style}, true
	}
	if b.inner == nil {
		return frame.Pixel{}, false
	}
	return b.inner.PixelAt(loc)
}

func (b bordered) String() string { return toString(b) }

func (b bordered) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sBordered(%s, %s, %s\n", offset, geometry.RectOf(b.geometry), b.kind, b.style)
	if b.inner != nil {
		sourceToString(buf, offset+"| ", b.inner)
	}
}

func (k BorderKind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Double:
		return "Double"
	case Rounded:
		return "Rounded"
	case ASCII:
		return "ASCII"
	}
	return "UNKNOWN BORDER KIND"
}

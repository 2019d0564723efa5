package device

import (
	"fmt"
	"strings"

	"termpix/geometry"

	"github.com/mattn/go-runewidth"
)

// Writer paints single cells. Locations are 1-based.
type Writer interface {
	Write(loc geometry.Location, glyph rune, style Style) error
	ShowCursor() error
	HideCursor() error
	Flush() error
}

// Input is a non-blocking source of raw input events.
// TryNextEvent returns (nil, nil) when nothing is available.
type Input interface {
	TryNextEvent() (Event, error)
}

type Device interface {
	Writer
	Input
	Size() geometry.Size
	Close()
}

type Style struct {
	FG, BG Color
	Flags  Flags
}

// Color zero value is the terminal's default color.
type Color uint16

const ColorDefault Color = 0

// PaletteColor selects an entry of the 256-color palette.
func PaletteColor(n uint8) Color {
	return Color(n) + 1
}

const (
	Black Color = iota + 1
	Maroon
	Green
	Olive
	Navy
	Purple
	Teal
	Silver
)

// Palette returns the palette index of c; ok is false for the default color.
func (c Color) Palette() (index uint8, ok bool) {
	if c == ColorDefault {
		return 0, false
	}
	return uint8(c - 1), true
}

type Flags byte

const (
	Bold Flags = 1 << iota
	Italic
	Reverse
	Underline
	Dim
	Blink
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

func (s Style) With(flags Flags) Style {
	s.Flags |= flags
	return s
}

// Clear writes a blank in the default style at loc.
func Clear(w Writer, loc geometry.Location) error {
	return w.Write(loc, ' ', Style{})
}

// Printable replaces glyphs that do not occupy a cell with a blank.
func Printable(glyph rune) rune {
	if glyph == ' ' || runewidth.RuneWidth(glyph) > 0 {
		return glyph
	}
	return ' '
}

func (s Style) String() string {
	return fmt.Sprintf("Style{FG: %s, BG: %s, Flags: {%s}}", s.FG, s.BG, s.Flags)
}

func (c Color) String() string {
	if idx, ok := c.Palette(); ok {
		return fmt.Sprint(idx)
	}
	return "default"
}

func (f Flags) String() string {
	flags := []string{}
	if f.Has(Bold) {
		flags = append(flags, "Bold")
	}
	if f.Has(Italic) {
		flags = append(flags, "Italic")
	}
	if f.Has(Reverse) {
		flags = append(flags, "Reverse")
	}
	if f.Has(Underline) {
		flags = append(flags, "Underline")
	}
	if f.Has(Dim) {
		flags = append(flags, "Dim")
	}
	if f.Has(Blink) {
		flags = append(flags, "Blink")
	}
	return strings.Join(flags, ", ")
}

// Package vt implements device.Writer as a plain stream of ANSI/VT
// sequences, for output that is not a tcell-managed terminal.
package vt

import (
	"bufio"
	"io"
	"strconv"

	"termpix/device"
	"termpix/geometry"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

type Writer struct {
	buf     *bufio.Writer
	out     *termenv.Output
	profile termenv.Profile

	cursor      geometry.Location
	cursorValid bool
}

func NewWriter(w io.Writer, profile termenv.Profile) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{
		buf:     buf,
		out:     termenv.NewOutput(buf, termenv.WithProfile(profile)),
		profile: profile,
	}
}

// Write positions the cursor unless it already sits at loc, which is the
// case for horizontally adjacent cells written in order.
func (w *Writer) Write(loc geometry.Location, glyph rune, style device.Style) error {
	if !w.cursorValid || w.cursor != loc {
		w.out.MoveCursor(loc.Y, loc.X)
	}
	styled := w.styled(string(device.Printable(glyph)), style)
	if _, err := w.buf.WriteString(styled); err != nil {
		w.cursorValid = false
		return err
	}
	w.cursor = geometry.Location{X: loc.X + ansi.PrintableRuneWidth(styled), Y: loc.Y}
	w.cursorValid = true
	return nil
}

func (w *Writer) styled(s string, style device.Style) string {
	st := w.profile.String(s)
	if c := w.color(style.FG); c != nil {
		st = st.Foreground(c)
	}
	if c := w.color(style.BG); c != nil {
		st = st.Background(c)
	}
	if style.Flags.Has(device.Bold) {
		st = st.Bold()
	}
	if style.Flags.Has(device.Dim) {
		st = st.Faint()
	}
	if style.Flags.Has(device.Italic) {
		st = st.Italic()
	}
	if style.Flags.Has(device.Underline) {
		st = st.Underline()
	}
	if style.Flags.Has(device.Blink) {
		st = st.Blink()
	}
	if style.Flags.Has(device.Reverse) {
		st = st.Reverse()
	}
	return st.String()
}

func (w *Writer) color(c device.Color) termenv.Color {
	idx, ok := c.Palette()
	if !ok {
		return nil
	}
	tc := w.profile.Color(strconv.Itoa(int(idx)))
	if _, none := tc.(termenv.NoColor); none {
		return nil
	}
	return tc
}

func (w *Writer) ShowCursor() error {
	w.out.ShowCursor()
	return nil
}

func (w *Writer) HideCursor() error {
	w.out.HideCursor()
	return nil
}

// ClearScreen erases the screen and forgets the cursor position.
func (w *Writer) ClearScreen() {
	w.out.ClearScreen()
	w.cursorValid = false
}

func (w *Writer) Flush() error {
	return w.buf.Flush()
}

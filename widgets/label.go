package widgets

import (
	"fmt"
	"strings"

	"termpix/device"
	"termpix/frame"
	"termpix/geometry"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

type label struct {
	at    geometry.Location
	width int
	text  string
	cells []rune
	style device.Style
}

// Label paints text on one row starting at at, padded with blanks to width
// columns. Text wider than width is cut and ends with '…'. A double width
// glyph leaves the column after it to the glyph.
func Label(at geometry.Location, width int, text string, style device.Style) Widget {
	if width < 0 {
		width = 0
	}
	text = norm.NFC.String(text)
	text = runewidth.Truncate(text, width, "…")
	cells := make([]rune, 0, width)
	for _, r := range text {
		cells = append(cells, device.Printable(r))
		if runewidth.RuneWidth(r) == 2 {
			cells = append(cells, 0)
		}
	}
	for len(cells) < width {
		cells = append(cells, ' ')
	}
	return label{at: at, width: width, text: text, cells: cells[:width], style: style}
}

func (l label) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	if loc.Y != l.at.Y || loc.X < l.at.X || loc.X >= l.at.X+l.width {
		return frame.Pixel{}, false
	}
	glyph := l.cells[loc.X-l.at.X]
	if glyph == 0 {
		return frame.Pixel{}, false
	}
	return frame.Pixel{Glyph: glyph, Style: l.style}, true
}

func (l label) String() string { return toString(l) }

func (l label) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sLabel(%s, %d, %q, %s)\n", offset, l.at, l.width, l.text, l.style)
}

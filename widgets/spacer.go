package widgets

import (
	"fmt"
	"strings"

	"termpix/device"
	"termpix/frame"
	"termpix/geometry"
)

// Spacer paints blanks everywhere. Put it last in Layers to give a region
// its own background.
type Spacer struct {
	Style device.Style
}

func (s Spacer) PixelAt(geometry.Location) (frame.Pixel, bool) {
	return frame.Pixel{Glyph: ' ', Style: s.Style}, true
}

func (s Spacer) String() string { return toString(s) }

func (s Spacer) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, offset+"Spacer{%s}\n", s.Style)
}

package widgets

import (
	"fmt"
	"strings"

	"termpix/device"
	"termpix/frame"
	"termpix/geometry"
)

type styled struct {
	style  device.Style
	source frame.Source
}

// Styled repaints everything source paints with style.
func Styled(style device.Style, source frame.Source) Widget {
	return styled{style: style, source: source}
}

func (s styled) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	pixel, ok := s.source.PixelAt(loc)
	if !ok {
		return frame.Pixel{}, false
	}
	pixel.Style = s.style
	return pixel, true
}

func (s styled) String() string { return toString(s) }

func (s styled) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, offset+"Styled(%s\n", s.style)
	sourceToString(buf, offset+"| ", s.source)
}

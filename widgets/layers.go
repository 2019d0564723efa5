package widgets

import (
	"fmt"
	"strings"

	"termpix/frame"
	"termpix/geometry"
)

type layers []frame.Source

// Layers stacks sources top to bottom: the first one with content at a
// location wins.
func Layers(sources ...frame.Source) Widget {
	return layers(sources)
}

func (l layers) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	for _, src := range l {
		if pixel, ok := src.PixelAt(loc); ok {
			return pixel, true
		}
	}
	return frame.Pixel{}, false
}

func (l layers) String() string { return toString(l) }

func (l layers) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sLayers(\n", offset)
	for _, src := range l {
		sourceToString(buf, offset+"| ", src)
	}
}

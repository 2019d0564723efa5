package main

import (
	"fmt"
	"log"
	"os"

	"termpix/device"
	"termpix/device/vt"
	"termpix/frame"
	"termpix/geometry"
	"termpix/screen"

	"github.com/muesli/termenv"
)

const (
	swatchWidth = 9
	perRow      = 8
	rows        = 256 / perRow
)

// swatch paints palette entry n as "   n   " on its own background.
func swatch(loc geometry.Location) (frame.Pixel, bool) {
	col, row := (loc.X-1)/swatchWidth, loc.Y-1
	if col >= perRow || row >= rows {
		return frame.Pixel{}, false
	}
	n := row*perRow + col
	text := fmt.Sprintf("   %3d   ", n)
	style := device.Style{FG: device.PaletteColor(231), BG: device.PaletteColor(uint8(n))}
	if light(n) {
		style.FG = device.Black
	}
	return frame.Pixel{Glyph: rune(text[(loc.X-1)%swatchWidth]), Style: style}, true
}

func light(n int) bool {
	switch {
	case n == 7 || (n >= 10 && n <= 15):
		return true
	case n >= 16 && n < 232:
		return (n-16)%36 >= 18
	}
	return n >= 244
}

func main() {
	log.SetFlags(0)

	output := termenv.NewOutput(os.Stdout)
	w := vt.NewWriter(os.Stdout, output.EnvColorProfile())
	w.ClearScreen()

	area := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: perRow*swatchWidth - 1, Height: rows - 1})
	updates := screen.NewCache().Diff(frame.Produce(area, frame.SourceFunc(swatch), frame.Blank))
	if err := screen.Paint(w, updates); err != nil {
		log.Fatalf("palette: %v", err)
	}
	if err := device.Clear(w, geometry.Location{X: 1, Y: rows + 1}); err != nil {
		log.Fatalf("palette: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("palette: %v", err)
	}
	fmt.Println()
}

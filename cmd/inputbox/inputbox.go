package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"termpix/app"
	"termpix/config"
	"termpix/controller"
	"termpix/device"
	"termpix/events"
	"termpix/frame"
	"termpix/geometry"
	"termpix/widgets"
)

var (
	styleValue  = device.Style{FG: device.Black, BG: device.Silver, Flags: device.Bold}
	styleBox    = device.Style{BG: device.Green}
	styleClose  = device.Style{FG: device.PaletteColor(231), BG: device.Maroon}
	styleStatus = device.Style{FG: device.PaletteColor(250), Flags: device.Italic}
)

// box size: 11 columns by 3 rows
var boxSize = geometry.Size{Width: 10, Height: 2}

type closeRequested struct{}

type inputBox struct {
	canvas  geometry.Rect
	center  geometry.Location
	value   rune
	targets widgets.MouseTargets
	view    widgets.Widget
}

func newInputBox(size geometry.Size) *inputBox {
	b := &inputBox{canvas: geometry.Screen(size), value: 'x'}
	b.center = b.canvas.Center()
	b.rebuild()
	return b
}

func (b *inputBox) Position() geometry.Location { return b.canvas.Pos }
func (b *inputBox) Size() geometry.Size         { return b.canvas.Dim }

func (b *inputBox) PixelAt(loc geometry.Location) (frame.Pixel, bool) {
	return b.view.PixelAt(loc)
}

func (b *inputBox) OnEvent(event events.Event) (events.Event, error) {
	defer b.rebuild()

	switch event := b.targets.Resolve(event).(type) {
	case events.Message:
		if _, ok := event.Payload.(closeRequested); ok {
			return events.Stop{}, nil
		}

	case events.GracefulStop:
		log.Printf("inputbox: stopping with value %q", b.value)

	case events.Input:
		return b.handleInput(event.Raw)
	}
	return events.NoInput{}, nil
}

func (b *inputBox) handleInput(raw device.Event) (events.Event, error) {
	switch raw := raw.(type) {
	case device.Key:
		switch raw.Code {
		case device.KeyRune:
			if raw.Mods&(device.ModCtrl|device.ModAlt|device.ModMeta) == 0 {
				b.value = raw.Rune
			}
		case device.KeyUp:
			b.moveTo(geometry.Location{X: b.center.X, Y: b.center.Y - 1})
		case device.KeyDown:
			b.moveTo(geometry.Location{X: b.center.X, Y: b.center.Y + 1})
		case device.KeyLeft:
			b.moveTo(geometry.Location{X: b.center.X - 1, Y: b.center.Y})
		case device.KeyRight:
			b.moveTo(geometry.Location{X: b.center.X + 1, Y: b.center.Y})
		case device.KeyEsc:
			return nil, fmt.Errorf("escape pressed: %w", controller.ErrInterrupted)
		}

	case device.Mouse:
		if raw.Action == device.MousePress || raw.Action == device.MouseHold {
			b.moveTo(raw.At)
		}

	case device.Resize:
		b.canvas = geometry.Screen(raw.Size)
		b.moveTo(b.center)
	}
	return events.NoInput{}, nil
}

// moveTo centers the box on loc, keeping it inside the canvas and off the
// status line when the canvas is big enough.
func (b *inputBox) moveTo(loc geometry.Location) {
	br := b.canvas.BottomRight()
	loc.X = min(loc.X, br.X-boxSize.Width/2)
	loc.Y = min(loc.Y, br.Y-1-boxSize.Height/2)
	loc.X = max(loc.X, b.canvas.Pos.X+boxSize.Width/2)
	loc.Y = max(loc.Y, b.canvas.Pos.Y+boxSize.Height/2)
	b.center = loc
}

func (b *inputBox) box() geometry.Rect {
	return geometry.NewRect(
		geometry.Location{X: b.center.X - boxSize.Width/2, Y: b.center.Y - boxSize.Height/2},
		boxSize,
	)
}

func (b *inputBox) closeButton() geometry.Rect {
	br := b.canvas.TopRight()
	return geometry.NewRect(geometry.Location{X: max(br.X-2, 1), Y: br.Y}, geometry.Size{Width: 2})
}

func (b *inputBox) rebuild() {
	box := b.box()
	closeButton := b.closeButton()
	b.targets.Reset()
	b.targets.Add(closeButton, closeRequested{})
	b.view = widgets.Layers(
		widgets.Label(closeButton.Pos, 3, "[x]", styleClose),
		widgets.Label(b.canvas.BottomLeft(), b.canvas.Dim.Width+1, " type to change · arrows or mouse to move · Esc or Ctrl-C to quit", styleStatus),
		frame.Query{
			Glyph: func(loc geometry.Location) (rune, bool) {
				if !box.Covers(loc) {
					return 0, false
				}
				if loc == box.Center() {
					return b.value, true
				}
				return ' ', true
			},
			Style: func(loc geometry.Location) device.Style {
				if loc == box.Center() {
					return styleValue
				}
				return styleBox
			},
		},
	)
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Parse("inputbox", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("inputbox: %v", err)
		os.Exit(int(controller.ExitError))
	}

	os.Exit(app.Run(context.Background(), cfg, func(size geometry.Size, cfg config.Config) controller.Widget {
		return newInputBox(size)
	}))
}

package tcell

import (
	"fmt"
	"log"
	"sync"

	"termpix/device"
	"termpix/geometry"
	"termpix/lifecycle"
	"termpix/stream"

	"github.com/gdamore/tcell/v2"
)

type Options struct {
	Mouse bool
}

type tcellDevice struct {
	screen  tcell.Screen
	events  *stream.Stream[polled]
	lc      *lifecycle.Lifecycle
	buttons tcell.ButtonMask
	cursor  geometry.Location
	once    sync.Once
}

type polled struct {
	event device.Event
	err   error
}

// New opens the controlling terminal.
func New(opts Options) (device.Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts)
}

// NewWithScreen initializes screen and starts pumping its events.
func NewWithScreen(screen tcell.Screen, opts Options) (device.Device, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorReset).Background(tcell.ColorReset))
	if opts.Mouse {
		screen.EnableMouse()
	}

	d := &tcellDevice{
		screen: screen,
		events: stream.NewStream[polled]("tcell"),
		lc:     lifecycle.New(),
		cursor: geometry.Location{X: 1, Y: 1},
	}
	d.lc.Go(d.pump)
	return d, nil
}

func (d *tcellDevice) pump() {
	for !d.lc.ShouldStop() {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		if raw, err := d.translate(event); raw != nil || err != nil {
			d.events.Push(polled{event: raw, err: err})
		}
	}
}

func (d *tcellDevice) translate(event tcell.Event) (device.Event, error) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return device.Resize{Size: geometry.Size{Width: w, Height: h}}, nil

	case *tcell.EventKey:
		return translateKey(ev), nil

	case *tcell.EventMouse:
		return d.translateMouse(ev), nil

	case *tcell.EventError:
		return nil, fmt.Errorf("tcell: %w", ev)

	default:
		log.Printf("### unhandled tcell event: %#v", ev)
		return nil, nil
	}
}

var keyCodes = map[tcell.Key]device.KeyCode{
	tcell.KeyUp:         device.KeyUp,
	tcell.KeyDown:       device.KeyDown,
	tcell.KeyLeft:       device.KeyLeft,
	tcell.KeyRight:      device.KeyRight,
	tcell.KeyEnter:      device.KeyEnter,
	tcell.KeyEscape:     device.KeyEsc,
	tcell.KeyTab:        device.KeyTab,
	tcell.KeyBacktab:    device.KeyBacktab,
	tcell.KeyBackspace:  device.KeyBackspace,
	tcell.KeyBackspace2: device.KeyBackspace,
	tcell.KeyDelete:     device.KeyDelete,
	tcell.KeyInsert:     device.KeyInsert,
	tcell.KeyHome:       device.KeyHome,
	tcell.KeyEnd:        device.KeyEnd,
	tcell.KeyPgUp:       device.KeyPgUp,
	tcell.KeyPgDn:       device.KeyPgDn,
	tcell.KeyF1:         device.KeyF1,
	tcell.KeyF2:         device.KeyF2,
	tcell.KeyF3:         device.KeyF3,
	tcell.KeyF4:         device.KeyF4,
	tcell.KeyF5:         device.KeyF5,
	tcell.KeyF6:         device.KeyF6,
	tcell.KeyF7:         device.KeyF7,
	tcell.KeyF8:         device.KeyF8,
	tcell.KeyF9:         device.KeyF9,
	tcell.KeyF10:        device.KeyF10,
	tcell.KeyF11:        device.KeyF11,
	tcell.KeyF12:        device.KeyF12,
}

func translateKey(ev *tcell.EventKey) device.Key {
	mods := modifiers(ev.Modifiers())
	k := ev.Key()
	if code, ok := keyCodes[k]; ok {
		return device.Key{Code: code, Mods: mods}
	}
	switch {
	case k == tcell.KeyRune:
		return device.Key{Code: device.KeyRune, Rune: ev.Rune(), Mods: mods}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return device.Key{Code: device.KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mods: mods | device.ModCtrl}
	}
	return device.Key{Code: device.KeyUnknown, Mods: mods}
}

func modifiers(m tcell.ModMask) device.Modifiers {
	var mods device.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= device.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= device.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= device.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= device.ModMeta
	}
	return mods
}

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// translateMouse turns tcell's button state reports into press/hold/release
// transitions. Motion with no button held is dropped.
func (d *tcellDevice) translateMouse(ev *tcell.EventMouse) device.Event {
	x, y := ev.Position()
	at := geometry.Location{X: x + 1, Y: y + 1}
	mods := modifiers(ev.Modifiers())
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		return device.Mouse{Action: device.MousePress, Button: device.WheelUp, At: at, Mods: mods}
	}
	if buttons&tcell.WheelDown != 0 {
		return device.Mouse{Action: device.MousePress, Button: device.WheelDown, At: at, Mods: mods}
	}

	pressed := buttons & pressButtons
	prev := d.buttons
	d.buttons = pressed
	switch {
	case pressed != 0 && prev == 0:
		return device.Mouse{Action: device.MousePress, Button: button(pressed), At: at, Mods: mods}
	case pressed != 0:
		return device.Mouse{Action: device.MouseHold, Button: button(pressed), At: at, Mods: mods}
	case prev != 0:
		return device.Mouse{Action: device.MouseRelease, Button: button(prev), At: at, Mods: mods}
	}
	return nil
}

func button(mask tcell.ButtonMask) device.MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return device.ButtonLeft
	case mask&tcell.Button3 != 0:
		return device.ButtonMiddle
	case mask&tcell.Button2 != 0:
		return device.ButtonRight
	}
	return device.ButtonNone
}

func (d *tcellDevice) TryNextEvent() (device.Event, error) {
	p, ok := d.events.TryPull()
	if !ok {
		return nil, nil
	}
	if _, resized := p.event.(device.Resize); resized {
		d.screen.Sync()
	}
	return p.event, p.err
}

func (d *tcellDevice) Write(loc geometry.Location, glyph rune, style device.Style) error {
	d.screen.SetContent(loc.X-1, loc.Y-1, device.Printable(glyph), nil, tcellStyle(style))
	d.cursor = loc
	return nil
}

func tcellStyle(style device.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(style.FG)).
		Background(tcellColor(style.BG)).
		Bold(style.Flags.Has(device.Bold)).
		Italic(style.Flags.Has(device.Italic)).
		Reverse(style.Flags.Has(device.Reverse)).
		Underline(style.Flags.Has(device.Underline)).
		Dim(style.Flags.Has(device.Dim)).
		Blink(style.Flags.Has(device.Blink))
}

func tcellColor(c device.Color) tcell.Color {
	if idx, ok := c.Palette(); ok {
		return tcell.PaletteColor(int(idx))
	}
	return tcell.ColorReset
}

func (d *tcellDevice) ShowCursor() error {
	d.screen.ShowCursor(d.cursor.X-1, d.cursor.Y-1)
	d.screen.Show()
	return nil
}

func (d *tcellDevice) HideCursor() error {
	d.screen.HideCursor()
	return nil
}

func (d *tcellDevice) Flush() error {
	d.screen.Show()
	return nil
}

func (d *tcellDevice) Size() geometry.Size {
	w, h := d.screen.Size()
	return geometry.Size{Width: w, Height: h}
}

// Close restores the terminal and stops the event pump. Safe to call twice.
func (d *tcellDevice) Close() {
	d.once.Do(func() {
		d.screen.Fini()
		d.lc.Stop()
		d.events.Close()
	})
}

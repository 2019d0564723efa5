package widgets

import (
	"strings"
	"testing"

	"termpix/device"
	"termpix/events"
	"termpix/frame"
	"termpix/geometry"
)

func render(src frame.Source, r geometry.Rect) string {
	buf := &strings.Builder{}
	f := frame.Produce(r, src, frame.Pixel{Glyph: '.'})
	for i, cell := range f {
		if i > 0 && cell.At.X == r.Pos.X {
			buf.WriteByte('\n')
		}
		buf.WriteRune(cell.Glyph)
	}
	return buf.String()
}

func TestBorderGlyphs(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 2, Y: 2}, geometry.Size{Width: 3, Height: 2})
	area := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 5, Height: 4})
	src := frame.SourceFunc(func(loc geometry.Location) (frame.Pixel, bool) {
		glyph, ok := BorderGlyph(r, loc, Simple)
		return frame.Pixel{Glyph: glyph}, ok
	})
	want := "" +
		"......\n" +
		".┌──┐.\n" +
		".│..│.\n" +
		".└──┘.\n" +
		"......"
	if got := render(src, area); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}

func TestBorderKinds(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 2, Height: 2})
	tests := []struct {
		kind BorderKind
		want string
	}{
		{Simple, "┌─┐\n│.│\n└─┘"},
		{Double, "╔═╗\n║.║\n╚═╝"},
		{Rounded, "╭─╮\n│.│\n╰─╯"},
		{ASCII, "+-+\n|.|\n+-+"},
	}
	for _, test := range tests {
		got := render(Bordered(r, test.kind, device.Style{}, nil), r)
		if got != test.want {
			t.Errorf("%s: expected\n%s\ngot\n%s", test.kind, test.want, got)
		}
	}
}

func TestBorderedDefersToInner(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 2, Height: 2})
	style := device.Style{FG: device.Teal}
	w := Bordered(r, ASCII, style, Spacer{})
	pixel, ok := w.PixelAt(geometry.Location{X: 2, Y: 2})
	if !ok || pixel.Glyph != ' ' {
		t.Errorf("Expected inner blank got %s %v", pixel, ok)
	}
	pixel, ok = w.PixelAt(geometry.Location{X: 1, Y: 1})
	if !ok || pixel != (frame.Pixel{Glyph: '+', Style: style}) {
		t.Errorf("Expected styled corner got %s %v", pixel, ok)
	}
	if _, ok = w.PixelAt(geometry.Location{X: 5, Y: 5}); ok {
		t.Error("Bordered painted outside of its rectangle")
	}
}

func TestBorderedInsideLargerArea(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 3, Y: 2}, geometry.Size{Width: 2, Height: 1})
	area := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 6, Height: 3})
	want := "" +
		".......\n" +
		"..+-+..\n" +
		"..+-+..\n" +
		"......."
	if got := render(Bordered(r, ASCII, device.Style{}, nil), area); got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
}

func TestLayers(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 4, Height: 0})
	top := Label(geometry.Location{X: 2, Y: 1}, 2, "ab", device.Style{})
	w := Layers(top, Styled(device.Style{Flags: device.Bold}, Spacer{}))
	if got := render(w, r); got != " ab  " {
		t.Errorf("Expected %q got %q", " ab  ", got)
	}
	pixel, _ := w.PixelAt(geometry.Location{X: 1, Y: 1})
	if !pixel.Style.Flags.Has(device.Bold) {
		t.Errorf("Expected bold background got %s", pixel)
	}
	if _, ok := Layers().PixelAt(geometry.Location{X: 1, Y: 1}); ok {
		t.Error("empty Layers painted")
	}
}

func TestLabel(t *testing.T) {
	row := geometry.NewRect(geometry.Location{X: 1, Y: 3}, geometry.Size{Width: 7, Height: 0})
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hi", 4, ".hi  ..."},
		{"hello world", 4, ".hel…..."},
		{"e\u0301te\u0301", 3, ".\u00e9t\u00e9...."},
		{"日本", 4, ".日.本...."},
		{"x", 0, "........"},
	}
	for _, test := range tests {
		l := Label(geometry.Location{X: 2, Y: 3}, test.width, test.text, device.Style{})
		if got := render(l, row); got != test.want {
			t.Errorf("Label(%q, %d): expected %q got %q", test.text, test.width, test.want, got)
		}
	}
}

func TestMouseTargets(t *testing.T) {
	targets := &MouseTargets{}
	targets.Add(geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 9, Height: 9}), "back")
	targets.Add(geometry.NewRect(geometry.Location{X: 3, Y: 3}, geometry.Size{Width: 1, Height: 1}), "front")

	press := func(x, y int) events.Event {
		return events.Input{Raw: device.Mouse{Action: device.MousePress, Button: device.ButtonLeft, At: geometry.Location{X: x, Y: y}}}
	}

	if got := targets.Resolve(press(4, 4)); got != (events.Message{Payload: "front"}) {
		t.Errorf("Expected front got %v", got)
	}
	if got := targets.Resolve(press(9, 2)); got != (events.Message{Payload: "back"}) {
		t.Errorf("Expected back got %v", got)
	}
	if got := targets.Resolve(press(20, 20)); got != press(20, 20) {
		t.Errorf("Expected unchanged event got %v", got)
	}
	hold := events.Input{Raw: device.Mouse{Action: device.MouseHold, Button: device.ButtonLeft, At: geometry.Location{X: 4, Y: 4}}}
	if got := targets.Resolve(hold); got != hold {
		t.Errorf("Expected hold to pass through got %v", got)
	}
	if got := targets.Resolve(events.NoInput{}); got != (events.NoInput{}) {
		t.Errorf("Expected NoInput got %v", got)
	}

	targets.Reset()
	if got := targets.Resolve(press(4, 4)); got != press(4, 4) {
		t.Errorf("Expected no targets after Reset got %v", got)
	}
}

func TestToString(t *testing.T) {
	r := geometry.NewRect(geometry.Location{X: 1, Y: 1}, geometry.Size{Width: 2, Height: 2})
	w := Layers(Bordered(r, Double, device.Style{}, Spacer{}))
	got := w.String()
	if !strings.HasPrefix(got, "Layers(\n| Bordered(") || !strings.Contains(got, "| | Spacer{") {
		t.Errorf("unexpected description:\n%s", got)
	}
}

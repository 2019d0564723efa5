package widgets

import (
	"fmt"
	"strings"

	"termpix/device"
	"termpix/events"
	"termpix/geometry"
)

type mouseTarget struct {
	rect    geometry.Rect
	payload any
}

// MouseTargets maps screen rectangles to message payloads. Targets added
// later sit on top of earlier ones.
type MouseTargets struct {
	targets []mouseTarget
}

func (t *MouseTargets) Add(g geometry.Geometry, payload any) {
	t.targets = append(t.targets, mouseTarget{rect: geometry.RectOf(g), payload: payload})
}

func (t *MouseTargets) Reset() {
	t.targets = t.targets[:0]
}

// Resolve turns a left button press over a target into a Message carrying
// the target's payload. Every other event is returned unchanged.
func (t *MouseTargets) Resolve(event events.Event) events.Event {
	input, ok := event.(events.Input)
	if !ok {
		return event
	}
	mouse, ok := input.Raw.(device.Mouse)
	if !ok || mouse.Action != device.MousePress || mouse.Button != device.ButtonLeft {
		return event
	}
	for i := len(t.targets) - 1; i >= 0; i-- {
		if t.targets[i].rect.Covers(mouse.At) {
			return events.Message{Payload: t.targets[i].payload}
		}
	}
	return event
}

func (t *MouseTargets) String() string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "MouseTargets(\n")
	for _, target := range t.targets {
		fmt.Fprintf(buf, "| %s: %v\n", target.rect, target.payload)
	}
	return buf.String()
}

package device

import (
	"fmt"
	"strings"

	"termpix/geometry"
)

// Event is a raw input event decoded by a terminal driver.
type Event interface {
	rawEvent()
}

type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUnknown
)

type Modifiers byte

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Key is a key press. For KeyRune, Rune holds the character; Ctrl+letter
// combinations arrive as the lower-case letter with ModCtrl set.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

func (Key) rawEvent() {}

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseHold
	MouseRelease
)

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

type Mouse struct {
	Action MouseAction
	Button MouseButton
	At     geometry.Location
	Mods   Modifiers
}

func (Mouse) rawEvent() {}

type Resize struct {
	Size geometry.Size
}

func (Resize) rawEvent() {}

// CtrlKey builds the Ctrl+letter key event.
func CtrlKey(letter rune) Key {
	return Key{Code: KeyRune, Rune: letter, Mods: ModCtrl}
}

// IsInterrupt reports whether ev is the operator's interrupt request (Ctrl+C).
func IsInterrupt(ev Event) bool {
	key, ok := ev.(Key)
	return ok && key.Code == KeyRune && key.Mods&ModCtrl != 0 && (key.Rune == 'c' || key.Rune == 'C')
}

var keyNames = map[KeyCode]string{
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeyEnter: "Enter", KeyEsc: "Esc", KeyTab: "Tab", KeyBacktab: "Backtab",
	KeyBackspace: "Backspace", KeyDelete: "Delete", KeyInsert: "Insert",
	KeyHome: "Home", KeyEnd: "End", KeyPgUp: "PgUp", KeyPgDn: "PgDn",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

// Name renders the key the way tcell names keys: "Ctrl+C", "Rune[x]", "Alt+Up".
func (k Key) Name() string {
	mods := []string{}
	if k.Mods&ModCtrl != 0 {
		mods = append(mods, "Ctrl")
	}
	if k.Mods&ModAlt != 0 {
		mods = append(mods, "Alt")
	}
	if k.Mods&ModMeta != 0 {
		mods = append(mods, "Meta")
	}
	if k.Mods&ModShift != 0 {
		mods = append(mods, "Shift")
	}
	var name string
	switch {
	case k.Code == KeyRune && k.Mods&ModCtrl != 0:
		name = strings.ToUpper(string(k.Rune))
	case k.Code == KeyRune:
		name = fmt.Sprintf("Rune[%c]", k.Rune)
	case keyNames[k.Code] != "":
		name = keyNames[k.Code]
	default:
		name = fmt.Sprintf("Key[%d]", k.Code)
	}
	return strings.Join(append(mods, name), "+")
}

func (k Key) String() string {
	return fmt.Sprintf("Key(%s)", k.Name())
}

func (m Mouse) String() string {
	return fmt.Sprintf("Mouse(%s %s at %s)", m.Action, m.Button, m.At)
}

func (r Resize) String() string {
	return fmt.Sprintf("Resize(%s)", r.Size)
}

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "Press"
	case MouseHold:
		return "Hold"
	case MouseRelease:
		return "Release"
	}
	return "UNKNOWN MOUSE ACTION"
}

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case WheelUp:
		return "WheelUp"
	case WheelDown:
		return "WheelDown"
	}
	return "UNKNOWN MOUSE BUTTON"
}

package core

import (
	"fmt"
	"strings"
)

// EventKind identifies the type of a raw device event.
type EventKind int

const (
	EventNone      EventKind = iota
	EventKeyDown             // A key was pressed
	EventMouseMove           // The cursor moved
	EventButtonDown          // A mouse button was pressed at the tracked cursor
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventKeyDown:
		return "key-down"
	case EventMouseMove:
		return "mouse-move"
	case EventButtonDown:
		return "button-down"
	default:
		return "unknown"
	}
}

// Keycode identifies a physical key. Printable keys use their lowercase
// ASCII code; other keys use the constants below.
type Keycode int

const (
	KeyNone Keycode = 0

	KeyReturn Keycode = 13
	KeyEscape Keycode = 27
	KeySpace  Keycode = 32

	KeyF1 Keycode = 256 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyUp
	KeyArrowDown
	KeyLeft
	KeyRight
)

// KeyRune returns the keycode of a printable key.
func KeyRune(r rune) Keycode {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Keycode(r)
}

var keyNames = map[Keycode]string{
	KeyNone:      "none",
	KeyReturn:    "return",
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyKP1:       "kp1",
	KeyKP2:       "kp2",
	KeyKP3:       "kp3",
	KeyKP4:       "kp4",
	KeyKP5:       "kp5",
	KeyKP6:       "kp6",
	KeyUp:        "up",
	KeyArrowDown: "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// String returns the key name used in config files and journals.
func (k Keycode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > KeySpace && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKeycode is the inverse of Keycode.String.
func ParseKeycode(s string) (Keycode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	if r := []rune(s); len(r) == 1 && r[0] > ' ' && r[0] < 127 {
		return KeyRune(r[0]), nil
	}
	return KeyNone, fmt.Errorf("core: unknown key %q", s)
}

// Modifier is a bitmask of keyboard modifiers held during a key press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// ModNone is the empty modifier mask.
const ModNone Modifier = 0

// String returns the modifiers joined with "+", or "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
)

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// RawEvent is one event as delivered by the platform, before any hit-testing.
// Pos is meaningful for mouse events only and is expressed in the 320x200
// virtual screen.
type RawEvent struct {
	Kind      EventKind   `json:"kind"`
	Key       Keycode     `json:"key,omitempty"`
	Mods      Modifier    `json:"mods,omitempty"`
	Button    MouseButton `json:"button,omitempty"`
	Pos       Point       `json:"pos"`
	Synthetic bool        `json:"synthetic,omitempty"`
}

// KeyDown builds a key-press event.
func KeyDown(k Keycode, mods Modifier) RawEvent {
	return RawEvent{Kind: EventKeyDown, Key: k, Mods: mods}
}

// MouseMove builds a cursor-move event.
func MouseMove(x, y int) RawEvent {
	return RawEvent{Kind: EventMouseMove, Pos: Pt(x, y)}
}

// ButtonDown builds a button-press event. The position is informational; the
// router uses the tracked cursor.
func ButtonDown(b MouseButton, x, y int) RawEvent {
	return RawEvent{Kind: EventButtonDown, Button: b, Pos: Pt(x, y)}
}

// String formats the event for logs.
func (e RawEvent) String() string {
	switch e.Kind {
	case EventKeyDown:
		return fmt.Sprintf("%s %s mods=%s", e.Kind, e.Key, e.Mods)
	case EventMouseMove:
		return fmt.Sprintf("%s (%d,%d)", e.Kind, e.Pos.X, e.Pos.Y)
	case EventButtonDown:
		return fmt.Sprintf("%s %s (%d,%d)", e.Kind, e.Button, e.Pos.X, e.Pos.Y)
	default:
		return e.Kind.String()
	}
}

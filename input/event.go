// Package input defines the keyboard events consumed by the game loop.
//
// Platform events are reduced to three shapes: Quit, KeyDown(key) and
// KeyUp(key). Hosts translate their native events into these and push them
// into a Queue; the loop polls at most one event per iteration.
package input

import (
	"fmt"
	"strings"
)

// Kind is the shape of an Event.
type Kind uint8

// Event kinds.
const (
	KindQuit Kind = iota + 1
	KindKeyDown
	KindKeyUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindKeyDown:
		return "down"
	case KindKeyUp:
		return "up"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Key is a keyboard key the demo reacts to. Every other key maps to KeyUnknown.
type Key uint8

// Recognized keys.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	Key4:       "4",
	Key5:       "5",
	Key6:       "6",
	Key7:       "7",
	Key8:       "8",
}

// String returns the lowercase key name used by input scripts.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsDirectional reports whether k is one of the arrow keys.
func (k Key) IsDirectional() bool {
	return k >= KeyLeft && k <= KeyDown
}

// Digit returns the number printed on a number key, 1 through 8.
func (k Key) Digit() (int, bool) {
	if k < Key1 || k > Key8 {
		return 0, false
	}
	return int(k-Key1) + 1, true
}

// ParseKey parses a key name as printed by Key.String. Matching ignores case
// and accepts "esc" for escape.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "esc" {
		return KeyEscape, nil
	}
	for k := KeyEscape; k <= Key8; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("input: unknown key %q", s)
}

// Event is a single input event.
type Event struct {
	Kind Kind
	Key  Key
}

// Quit returns a quit event (window closed).
func Quit() Event { return Event{Kind: KindQuit} }

// Down returns a key-down event for k.
func Down(k Key) Event { return Event{Kind: KindKeyDown, Key: k} }

// Up returns a key-up event for k.
func Up(k Key) Event { return Event{Kind: KindKeyUp, Key: k} }

// Quits reports whether the event ends the loop: a quit event or Escape
// being pressed.
func (e Event) Quits() bool {
	return e.Kind == KindQuit || (e.Kind == KindKeyDown && e.Key == KeyEscape)
}

// String returns a short description such as "down(right)".
func (e Event) String() string {
	if e.Kind == KindQuit {
		return "quit"
	}
	return e.Kind.String() + "(" + e.Key.String() + ")"
}

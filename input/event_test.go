package input

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUnknown, "unknown"},
		{KeyEscape, "escape"},
		{KeyLeft, "left"},
		{KeyDown, "down"},
		{Key1, "1"},
		{Key8, "8"},
		{Key(200), "Key(200)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", uint8(tt.key), got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	for k := KeyEscape; k <= Key8; k++ {
		got, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(%q) error: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if got, err := ParseKey(" ESC "); err != nil || got != KeyEscape {
		t.Errorf("ParseKey(ESC) = %v, %v; want escape", got, err)
	}
	if _, err := ParseKey("space"); err == nil {
		t.Error("ParseKey(space) should fail")
	}
}

func TestKeyDigit(t *testing.T) {
	if d, ok := Key3.Digit(); !ok || d != 3 {
		t.Errorf("Key3.Digit() = %d, %v; want 3, true", d, ok)
	}
	if _, ok := KeyLeft.Digit(); ok {
		t.Error("KeyLeft.Digit() should not be a digit")
	}
	if !KeyUp.IsDirectional() || Key1.IsDirectional() || KeyEscape.IsDirectional() {
		t.Error("IsDirectional mismatch")
	}
}

func TestEventQuits(t *testing.T) {
	tests := []struct {
		ev   Event
		want bool
	}{
		{Quit(), true},
		{Down(KeyEscape), true},
		{Up(KeyEscape), false},
		{Down(KeyRight), false},
		{Up(KeyLeft), false},
	}
	for _, tt := range tests {
		if got := tt.ev.Quits(); got != tt.want {
			t.Errorf("%v.Quits() = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	if got := Down(KeyRight).String(); got != "down(right)" {
		t.Errorf("Down(KeyRight).String() = %q", got)
	}
	if got := Quit().String(); got != "quit" {
		t.Errorf("Quit().String() = %q", got)
	}
}

func TestFromGPUKey(t *testing.T) {
	tests := []struct {
		in   gpucontext.Key
		want Key
	}{
		{gpucontext.KeyEscape, KeyEscape},
		{gpucontext.KeyLeft, KeyLeft},
		{gpucontext.KeyRight, KeyRight},
		{gpucontext.KeyUp, KeyUp},
		{gpucontext.KeyDown, KeyDown},
		{gpucontext.Key1, Key1},
		{gpucontext.Key3, Key3},
		{gpucontext.Key8, Key8},
		{gpucontext.Key9, KeyUnknown},
		{gpucontext.Key0, KeyUnknown},
		{gpucontext.KeyNumpad5, Key5},
		{gpucontext.KeyNumpad9, KeyUnknown},
		{gpucontext.KeySpace, KeyUnknown},
		{gpucontext.KeyA, KeyUnknown},
	}
	for _, tt := range tests {
		if got := FromGPUKey(tt.in); got != tt.want {
			t.Errorf("FromGPUKey(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

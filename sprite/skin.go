package sprite

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/tilewalk/input"
)

// ErrUnknownSkin is returned for skin numbers outside 1..len(Skins).
var ErrUnknownSkin = errors.New("sprite: unknown skin")

// Skin is one character strip of the tileset.
type Skin struct {
	Kind   string
	Female bool
	Row    int
}

// Name returns the display name, e.g. "Knight (F)".
func (s Skin) Name() string {
	g := "M"
	if s.Female {
		g = "F"
	}
	return cases.Title(language.English).String(s.Kind) + " (" + g + ")"
}

// Skins lists the tileset strips in number-key order: key 1 selects Skins[0].
var Skins = [...]Skin{
	{Kind: "elf", Female: true, Row: 4},
	{Kind: "elf", Female: false, Row: 36},
	{Kind: "knight", Female: true, Row: 68},
	{Kind: "knight", Female: false, Row: 100},
	{Kind: "wizard", Female: true, Row: 132},
	{Kind: "wizard", Female: false, Row: 164},
	{Kind: "lizard", Female: true, Row: 196},
	{Kind: "lizard", Female: false, Row: 228},
}

// SkinNumber returns the skin for a 1-based number.
func SkinNumber(n int) (Skin, error) {
	if n < 1 || n > len(Skins) {
		return Skin{}, fmt.Errorf("%w: %d", ErrUnknownSkin, n)
	}
	return Skins[n-1], nil
}

// SkinForKey returns the skin selected by a number key.
func SkinForKey(k input.Key) (Skin, bool) {
	n, ok := k.Digit()
	if !ok {
		return Skin{}, false
	}
	s, err := SkinNumber(n)
	return s, err == nil
}

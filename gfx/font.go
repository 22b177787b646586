package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/tilewalk/sprite"
)

// Font is a TrueType/OpenType face at a fixed size.
type Font struct {
	source *text.FontSource
	face   text.Face
	size   float64
}

// LoadFont loads the font file at path with the given size in points.
func LoadFont(path string, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gfx: font size must be positive, got %v", size)
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}
	logger().Debug("gfx: font loaded", "path", path, "name", source.Name(), "size", size)
	return &Font{source: source, face: source.Face(size), size: size}, nil
}

// NewFont creates a Font from in-memory font data.
func NewFont(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gfx: font size must be positive, got %v", size)
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("gfx: parse font: %w", err)
	}
	return &Font{source: source, face: source.Face(size), size: size}, nil
}

// Name returns the font family name.
func (f *Font) Name() string { return f.source.Name() }

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// Close releases the font source.
func (f *Font) Close() error { return f.source.Close() }

// RenderText rasterizes s in col onto a transparent texture just large
// enough to hold it.
func (f *Font) RenderText(s string, col color.Color) (*Texture, error) {
	w, _ := text.Measure(s, f.face)
	m := f.face.Metrics()
	width := int(math.Ceil(w))
	height := int(math.Ceil(m.Ascent + m.Descent))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyText, s)
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()
	dc.SetFont(f.face)
	dc.SetColor(col)
	dc.DrawString(s, 0, m.Ascent)
	return NewTexture(dc.Image()), nil
}

// RenderLabel implements loop.LabelRenderer.
func (f *Font) RenderLabel(s string, col color.Color) (sprite.Texture, error) {
	tex, err := f.RenderText(s, col)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

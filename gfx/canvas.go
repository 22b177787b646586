package gfx

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gg"
	"github.com/gogpu/tilewalk/sprite"
)

// PresentFunc receives the finished frame.
type PresentFunc func(dc *gg.Context) error

// Canvas draws sprite cells and labels onto a gg.Context.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
	present    PresentFunc
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithBackground sets the Clear color. Default: opaque black.
func WithBackground(c color.Color) CanvasOption {
	return func(cv *Canvas) { cv.background = gg.FromColor(c) }
}

// WithPresent sets the hook run by Present.
func WithPresent(fn PresentFunc) CanvasOption {
	return func(cv *Canvas) { cv.present = fn }
}

// NewCanvas creates a Canvas drawing into dc. dc may be nil and bound later
// with Bind.
func NewCanvas(dc *gg.Context, opts ...CanvasOption) *Canvas {
	cv := &Canvas{
		dc:         dc,
		background: gg.Black,
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// Bind switches the target context, e.g. after a window resize.
func (cv *Canvas) Bind(dc *gg.Context) { cv.dc = dc }

// Context returns the bound context.
func (cv *Canvas) Context() *gg.Context { return cv.dc }

// Clear fills the context with the background color.
func (cv *Canvas) Clear() error {
	if cv.dc == nil {
		return ErrNoContext
	}
	cv.dc.ClearWithColor(cv.background)
	return nil
}

// Draw copies src of tex into dst. The cell is scaled to dst with
// nearest-neighbour sampling and mirrored horizontally when flipH is set.
// Empty rectangles draw nothing. Scaled cells are cached on the texture.
func (cv *Canvas) Draw(tex sprite.Texture, src, dst image.Rectangle, flipH bool) error {
	if cv.dc == nil {
		return ErrNoContext
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return ErrForeignTexture
	}
	if src.Empty() || dst.Empty() {
		return nil
	}
	if !src.In(t.Bounds()) {
		return fmt.Errorf("%w: %v not in %v", ErrSourceOutOfBounds, src, t.Bounds())
	}

	x, y := float64(dst.Min.X), float64(dst.Min.Y)
	if !flipH && src.Size() == dst.Size() {
		// 1:1 blits sample exact pixel centres, so gg's default filter is
		// lossless here.
		r := src
		cv.dc.DrawImageEx(t.imageBuf(), gg.DrawImageOptions{
			X:         x,
			Y:         y,
			SrcRect:   &r,
			Opacity:   1,
			BlendMode: gg.BlendNormal,
		})
		return nil
	}

	// gg coerces a zero Interpolation (InterpNearest) to bilinear, which
	// would blur pixel art, so scaled cells are resampled here once.
	cv.dc.DrawImage(t.cell(src, dst.Dx(), dst.Dy(), flipH), x, y)
	return nil
}

// Present hands the frame to the present hook, if any.
func (cv *Canvas) Present() error {
	if cv.present == nil {
		return nil
	}
	return cv.present(cv.dc)
}

// scaleCell returns src resampled to w x h, optionally mirrored.
func scaleCell(img *image.NRGBA, src image.Rectangle, w, h int, flipH bool) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	sx := float64(w) / float64(src.Dx())
	sy := float64(h) / float64(src.Dy())

	// Aff3 maps source coordinates to destination coordinates.
	m := f64.Aff3{
		sx, 0, -sx * float64(src.Min.X),
		0, sy, -sy * float64(src.Min.Y),
	}
	if flipH {
		m[0] = -sx
		m[2] = sx * float64(src.Max.X)
	}
	draw.NearestNeighbor.Transform(out, m, img, src, draw.Src, nil)
	return out
}

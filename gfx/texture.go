package gfx

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/gg"
)

// Texture is a decoded image held in non-premultiplied RGBA.
//
// A Texture keeps the gg image buffers built for it, one for the whole image
// and one per scaled cell, so repeated draws allocate nothing. It is not
// safe for concurrent use.
type Texture struct {
	img *image.NRGBA

	buf   *gg.ImageBuf
	cells map[cellKey]*gg.ImageBuf
}

// cellKey identifies a scaled, possibly mirrored, copy of a source cell.
type cellKey struct {
	src   image.Rectangle
	w, h  int
	flipH bool
}

// NewTexture copies src into a Texture with its origin at (0, 0).
func NewTexture(src image.Image) *Texture {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return &Texture{img: dst}
}

// LoadTexture decodes a PNG, JPEG or WebP file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: load texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode %s: %w", path, err)
	}
	tex := NewTexture(img)
	w, h := tex.Size()
	logger().Debug("gfx: texture loaded", "path", path, "format", format, "width", w, "height", h)
	return tex, nil
}

// Size returns the texture dimensions.
func (t *Texture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Bounds returns the texture rectangle, always anchored at (0, 0).
func (t *Texture) Bounds() image.Rectangle { return t.img.Bounds() }

// Image returns the underlying pixels. The caller must not modify them.
func (t *Texture) Image() *image.NRGBA { return t.img }

// imageBuf returns the whole texture as a gg buffer.
func (t *Texture) imageBuf() *gg.ImageBuf {
	if t.buf == nil {
		t.buf = gg.ImageBufFromImage(t.img)
	}
	return t.buf
}

// cell returns src scaled to w x h with nearest-neighbour sampling,
// mirrored when flipH is set. Results are cached per texture.
func (t *Texture) cell(src image.Rectangle, w, h int, flipH bool) *gg.ImageBuf {
	key := cellKey{src: src, w: w, h: h, flipH: flipH}
	if buf, ok := t.cells[key]; ok {
		return buf
	}
	if t.cells == nil {
		t.cells = make(map[cellKey]*gg.ImageBuf)
	}
	buf := gg.ImageBufFromImage(scaleCell(t.img, src, w, h, flipH))
	t.cells[key] = buf
	return buf
}

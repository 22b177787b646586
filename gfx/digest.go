package gfx

import (
	"encoding/binary"
	"image"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
)

// Digest returns a 64-bit fingerprint of an image's size and RGBA pixels.
// Identical frames always produce identical digests.
func Digest(img image.Image) uint64 {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
		b = rgba.Bounds()
	}

	h := xxhash.New()
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(b.Dx()))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(b.Dy()))
	_, _ = h.Write(hdr[:])

	rowLen := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := rgba.PixOffset(b.Min.X, y)
		_, _ = h.Write(rgba.Pix[off : off+rowLen])
	}
	return h.Sum64()
}

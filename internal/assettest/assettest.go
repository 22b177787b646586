// Package assettest writes small tileset and font files for tests.
package assettest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// Size is the edge length of the generated tileset. It covers every strip
// and skin row of the default sheet geometry.
const Size = 256

// CellColor is the fill of the cell whose top-left corner is (x, y). Skin
// rows start at y = 4 + 32k.
func CellColor(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff}
}

// Tileset returns a Size x Size image where every 16 pixel wide cell of a
// skin row carries CellColor of its corner.
func Tileset() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := range Size {
		for x := range Size {
			cx := x - x%16
			cy := 0
			if y >= 4 {
				cy = 4 + (y-4)/32*32
			}
			img.SetNRGBA(x, y, CellColor(cx, cy))
		}
	}
	return img
}

// Write stores the tileset as PNG and the Go Regular font in dir and
// returns both paths.
func Write(tb testing.TB, dir string) (tileset, font string) {
	tb.Helper()
	tileset = filepath.Join(dir, "tileset.png")
	f, err := os.Create(tileset)
	if err != nil {
		tb.Fatalf("os.Create() = %v", err)
	}
	if err := png.Encode(f, Tileset()); err != nil {
		_ = f.Close()
		tb.Fatalf("png.Encode() = %v", err)
	}
	if err := f.Close(); err != nil {
		tb.Fatalf("Close() = %v", err)
	}

	font = filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(font, goregular.TTF, 0o600); err != nil {
		tb.Fatalf("os.WriteFile() = %v", err)
	}
	return tileset, font
}

package sprite

import "image"

// Texture is an image the canvas can draw from.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)
}

// Canvas is the drawing surface a character renders to.
type Canvas interface {
	// Draw copies src from tex into dst, scaling as needed, mirrored
	// horizontally when flipH is set.
	Draw(tex Texture, src, dst image.Rectangle, flipH bool) error
}

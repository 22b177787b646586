package gfx

import "errors"

// Drawing and loading errors.
var (
	// ErrForeignTexture is returned when Canvas.Draw gets a texture that was
	// not created by this package.
	ErrForeignTexture = errors.New("gfx: texture was not created by gfx")

	// ErrSourceOutOfBounds is returned when a source rectangle does not lie
	// inside its texture.
	ErrSourceOutOfBounds = errors.New("gfx: source rectangle outside texture")

	// ErrEmptyText is returned when a label would have no pixels.
	ErrEmptyText = errors.New("gfx: text has zero width")

	// ErrNoContext is returned when drawing on a Canvas with no bound context.
	ErrNoContext = errors.New("gfx: canvas has no context")
)

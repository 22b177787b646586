// Package gfx implements the drawing collaborators of the demo on top of gg:
// a Canvas that blits sprite cells, Textures decoded from image files, and
// Fonts that rasterize text labels.
//
// Sprite cells are scaled with nearest-neighbour sampling (and mirrored
// when requested) through golang.org/x/image/draw before being composited
// onto the gg.Context, so pixel art stays crisp at any integer scale.
//
// Canvas is NOT safe for concurrent use.
package gfx

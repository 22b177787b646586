// Package tilewalk is a small sprite-animation demo built on gg and gogpu.
//
// # Overview
//
// A single character walks around a window. The demo loads a fixed-layout
// tileset and a font, reads keyboard input, advances the character with a
// fixed-timestep integrator and draws an animated sprite plus a text label
// every frame.
//
// # Packages
//
//   - input: neutral keyboard events and a non-blocking event queue
//   - sprite: character state, animation frames, facing and skins
//   - loop: the fixed-timestep game loop driver
//   - gfx: gg-backed canvas, textures and fonts
//
// The window host (gogpu) and an off-screen host used for scripted runs live
// under internal/ and are wired together by cmd/tilewalk.
//
// # Controls
//
//	Arrow keys   move (and turn left/right)
//	1 .. 8       switch character skin
//	Escape       quit
//
// # Logging
//
// tilewalk produces no log output by default. Call SetLogger to enable it.
package tilewalk

// Version information
const (
	// Version is the current version of the demo
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)

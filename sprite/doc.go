// Package sprite holds the character state of the demo: position, velocity,
// facing, the current animation frame and the selected skin, plus the
// sprite-sheet geometry needed to draw it.
//
// # Sprite sheet layout
//
// The tileset stores every skin as a horizontal strip at a fixed vertical
// offset (Skin.Row). Within a strip, four 16x28 cells starting at x=128 hold
// the idle animation and four cells starting at x=192 hold the moving
// animation:
//
//	x=128             x=192
//	| i0 | i1 | i2 | i3 | m0 | m1 | m2 | m3 |   <- Row
//
// # Motion models
//
// MotionContinuous moves the character by velocity * dt on each fixed
// simulation step. MotionDiscrete nudges the position by a constant Step
// when an arrow key goes down and never integrates velocity.
//
// Character is not safe for concurrent use; the loop driver owns it.
package sprite

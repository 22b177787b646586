package sprite

import (
	"errors"
	"image"
	"math"
	"time"

	"github.com/gogpu/tilewalk/input"
)

// Character defaults.
const (
	InitialX = 64
	InitialY = 112

	// DefaultSpeed is the continuous-motion speed in units per millisecond.
	DefaultSpeed = 0.3

	// DefaultStep is the discrete-motion nudge per key press.
	DefaultStep = 4
)

// ErrNoTexture is returned by RenderTo when the sheet has no texture.
var ErrNoTexture = errors.New("sprite: sheet has no texture")

// heldKeys is a bit set of directional keys currently held down.
type heldKeys uint8

func keyBit(k input.Key) heldKeys {
	return 1 << (k - input.KeyLeft)
}

// Character is the single animated entity of the demo.
//
// X and Y change only through Integrate (continuous motion) or the arrow-key
// nudge (discrete motion). Frame is always in [0, Sheet.Frames).
type Character struct {
	X, Y   float64
	VX, VY float64
	Facing Facing
	Frame  int

	sheet  Sheet
	motion Motion
	speed  float64
	step   float64
	skins  bool
	held   heldKeys
	skin   Skin
}

// Option configures a Character during creation.
type Option func(*Character)

// WithMotion selects the motion model. Default: MotionContinuous.
func WithMotion(m Motion) Option {
	return func(c *Character) { c.motion = m }
}

// WithSpeed sets the continuous-motion speed in units per millisecond.
func WithSpeed(v float64) Option {
	return func(c *Character) { c.speed = v }
}

// WithStep sets the discrete-motion nudge.
func WithStep(d float64) Option {
	return func(c *Character) { c.step = d }
}

// WithPosition overrides the initial position.
func WithPosition(x, y float64) Option {
	return func(c *Character) { c.X, c.Y = x, y }
}

// WithSkin selects the initial skin. Invalid numbers are ignored.
func WithSkin(n int) Option {
	return func(c *Character) {
		if s, err := SkinNumber(n); err == nil {
			c.skin = s
		}
	}
}

// WithoutSkinKeys disables skin switching with the number keys.
func WithoutSkinKeys() Option {
	return func(c *Character) { c.skins = false }
}

// NewCharacter creates a character at (64, 112) facing right, idle, wearing
// the first skin.
func NewCharacter(sheet Sheet, opts ...Option) *Character {
	c := &Character{
		X:      InitialX,
		Y:      InitialY,
		Facing: FacingRight,
		sheet:  sheet,
		speed:  DefaultSpeed,
		step:   DefaultStep,
		skins:  true,
		skin:   Skins[0],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sheet returns the sprite-sheet geometry.
func (c *Character) Sheet() Sheet { return c.sheet }

// Motion returns the motion model.
func (c *Character) Motion() Motion { return c.motion }

// Skin returns the current skin.
func (c *Character) Skin() Skin { return c.skin }

// Row returns the vertical offset of the current skin strip.
func (c *Character) Row() int { return c.skin.Row }

// Name returns the display name of the current skin.
func (c *Character) Name() string { return c.skin.Name() }

// SkinKeys reports whether number keys switch skins.
func (c *Character) SkinKeys() bool { return c.skins }

// SetSkin switches to the 1-based skin n. Position, velocity and facing are
// left untouched.
func (c *Character) SetSkin(n int) error {
	s, err := SkinNumber(n)
	if err != nil {
		return err
	}
	c.skin = s
	return nil
}

// HandleKey applies a key event. Quit events and unrecognized keys are
// ignored.
func (c *Character) HandleKey(ev input.Event) {
	switch ev.Kind {
	case input.KindKeyDown:
		c.keyDown(ev.Key)
	case input.KindKeyUp:
		c.keyUp(ev.Key)
	case input.KindQuit:
	}
}

func (c *Character) keyDown(k input.Key) {
	if s, ok := SkinForKey(k); ok {
		if c.skins {
			c.skin = s
		}
		return
	}
	if !k.IsDirectional() {
		return
	}

	switch k {
	case input.KeyRight:
		c.Facing = FacingRight
	case input.KeyLeft:
		c.Facing = FacingLeft
	}

	switch c.motion {
	case MotionContinuous:
		dx, dy := direction(k)
		if dx != 0 {
			c.VX = dx * c.speed
		}
		if dy != 0 {
			c.VY = dy * c.speed
		}
	case MotionDiscrete:
		dx, dy := direction(k)
		c.X += dx * c.step
		c.Y += dy * c.step
		c.held |= keyBit(k)
	}
}

func (c *Character) keyUp(k input.Key) {
	if !k.IsDirectional() {
		return
	}

	switch c.motion {
	case MotionContinuous:
		switch k {
		case input.KeyLeft, input.KeyRight:
			c.VX = 0
		case input.KeyUp, input.KeyDown:
			c.VY = 0
		}
	case MotionDiscrete:
		c.held &^= keyBit(k)
	}
}

// direction returns the unit vector of an arrow key; y grows downwards.
func direction(k input.Key) (dx, dy float64) {
	switch k {
	case input.KeyLeft:
		return -1, 0
	case input.KeyRight:
		return 1, 0
	case input.KeyUp:
		return 0, -1
	case input.KeyDown:
		return 0, 1
	}
	return 0, 0
}

// Integrate advances the character by one fixed step of length dt at
// simulation time t. Continuous motion moves by velocity * dt, with velocity
// in units per millisecond; discrete motion leaves the position alone. Both
// recompute Frame from t.
func (c *Character) Integrate(t, dt time.Duration) {
	if c.motion == MotionContinuous {
		ms := float64(dt) / float64(time.Millisecond)
		c.X += c.VX * ms
		c.Y += c.VY * ms
	}
	c.Frame = c.sheet.FrameAt(t)
}

// IsMoving reports whether the moving animation strip is shown: velocity is
// non-zero (continuous) or an arrow key is held (discrete).
func (c *Character) IsMoving() bool {
	if c.motion == MotionDiscrete {
		return c.held != 0
	}
	return c.VX != 0 || c.VY != 0
}

// SpriteOffset returns the x offset of the strip for the current state.
func (c *Character) SpriteOffset() int {
	if c.IsMoving() {
		return c.sheet.MovingOffset
	}
	return c.sheet.IdleOffset
}

// SourceRect returns the sheet cell for the current frame and skin.
func (c *Character) SourceRect() image.Rectangle {
	x := c.SpriteOffset() + c.sheet.CellWidth*c.Frame
	y := c.skin.Row
	return image.Rect(x, y, x+c.sheet.CellWidth, y+c.sheet.CellHeight)
}

// DestRect returns where the sprite lands on the canvas, with the position
// rounded to whole pixels.
func (c *Character) DestRect() image.Rectangle {
	x := int(math.Round(c.X))
	y := int(math.Round(c.Y))
	return image.Rect(x, y, x+c.sheet.RenderWidth, y+c.sheet.RenderHeight)
}

// RenderTo draws the current cell, mirrored when facing left.
func (c *Character) RenderTo(cv Canvas) error {
	if c.sheet.Texture == nil {
		return ErrNoTexture
	}
	return cv.Draw(c.sheet.Texture, c.SourceRect(), c.DestRect(), c.Facing == FacingLeft)
}

package sprite

import "fmt"

// Facing is the horizontal orientation of the character.
// The zero value is FacingRight.
type Facing uint8

// Facing values.
const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "right" or "left".
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return fmt.Sprintf("Facing(%d)", uint8(f))
	}
}

// Motion selects how arrow keys move the character.
type Motion uint8

// Motion models.
const (
	// MotionContinuous sets velocity on key-down and integrates it every step.
	MotionContinuous Motion = iota

	// MotionDiscrete nudges position by a fixed step on key-down.
	MotionDiscrete
)

// String returns the name used in configuration files.
func (m Motion) String() string {
	switch m {
	case MotionContinuous:
		return "continuous"
	case MotionDiscrete:
		return "discrete"
	default:
		return fmt.Sprintf("Motion(%d)", uint8(m))
	}
}

// ParseMotion parses "continuous" or "discrete".
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "continuous", "":
		return MotionContinuous, nil
	case "discrete":
		return MotionDiscrete, nil
	}
	return 0, fmt.Errorf("sprite: unknown motion %q", s)
}

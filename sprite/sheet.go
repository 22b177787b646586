package sprite

import (
	"errors"
	"fmt"
	"time"
)

// Default sheet geometry of the bundled tileset.
const (
	DefaultCellWidth     = 16
	DefaultCellHeight    = 28
	DefaultRenderWidth   = 64
	DefaultRenderHeight  = 112
	DefaultIdleOffset    = 128
	DefaultMovingOffset  = 192
	DefaultFrames        = 4
	DefaultFrameDuration = 100 * time.Millisecond
)

// ErrInvalidSheet is returned by Sheet.Validate for unusable geometry.
var ErrInvalidSheet = errors.New("sprite: invalid sheet")

// Sheet describes where the animation cells live in the tileset and how
// large a cell is drawn.
type Sheet struct {
	Texture Texture

	CellWidth, CellHeight     int
	RenderWidth, RenderHeight int

	// IdleOffset and MovingOffset are the x coordinates of the first cell of
	// the idle and moving strips.
	IdleOffset, MovingOffset int

	Frames        int
	FrameDuration time.Duration
}

// DefaultSheet returns the geometry of the bundled tileset.
func DefaultSheet(tex Texture) Sheet {
	return Sheet{
		Texture:       tex,
		CellWidth:     DefaultCellWidth,
		CellHeight:    DefaultCellHeight,
		RenderWidth:   DefaultRenderWidth,
		RenderHeight:  DefaultRenderHeight,
		IdleOffset:    DefaultIdleOffset,
		MovingOffset:  DefaultMovingOffset,
		Frames:        DefaultFrames,
		FrameDuration: DefaultFrameDuration,
	}
}

// Validate checks that every size is positive.
func (s Sheet) Validate() error {
	switch {
	case s.CellWidth <= 0 || s.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidSheet, s.CellWidth, s.CellHeight)
	case s.RenderWidth <= 0 || s.RenderHeight <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidSheet, s.RenderWidth, s.RenderHeight)
	case s.Frames <= 0:
		return fmt.Errorf("%w: %d frames", ErrInvalidSheet, s.Frames)
	case s.FrameDuration <= 0:
		return fmt.Errorf("%w: frame duration %v", ErrInvalidSheet, s.FrameDuration)
	case s.IdleOffset < 0 || s.MovingOffset < 0:
		return fmt.Errorf("%w: negative strip offset", ErrInvalidSheet)
	}
	return nil
}

// FrameAt returns the animation frame shown at simulation time t:
// floor(t / FrameDuration) mod Frames. Negative times show frame 0.
func (s Sheet) FrameAt(t time.Duration) int {
	if t <= 0 {
		return 0
	}
	return int((t / s.FrameDuration) % time.Duration(s.Frames))
}

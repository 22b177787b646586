// Package headless runs the demo offscreen against a manual clock, for
// reproducible replays and golden-frame checks.
package headless

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/tilewalk"
	"github.com/gogpu/tilewalk/gfx"
	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/internal/game"
	"github.com/gogpu/tilewalk/loop"
)

// DefaultInterval is the simulated wall time between frames.
const DefaultInterval = 16 * time.Millisecond

// ErrNoFrames is returned when Options.Frames is not positive.
var ErrNoFrames = errors.New("headless: frame count must be positive")

// Options configures a headless run.
type Options struct {
	// Frames is the maximum number of frames to draw.
	Frames int

	// Interval advances the clock before every frame. Default: DefaultInterval.
	Interval time.Duration

	// OutDir receives frame-NNNN.png files when set.
	OutDir string

	// Script feeds input events as the clock passes their time.
	Script *input.Script
}

// Result summarizes a run.
type Result struct {
	Frames  uint64
	Steps   uint64
	SimTime time.Duration

	// Digests holds one gfx.Digest per presented frame.
	Digests []uint64

	// Quit is set when a quit event ended the run early.
	Quit bool

	// X, Y and Skin describe the character after the last frame.
	X, Y float64
	Skin string
}

// Run draws up to opts.Frames frames of g into an offscreen context.
func Run(ctx context.Context, g *game.Game, opts Options) (*Result, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoFrames, opts.Frames)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("headless: %w", err)
		}
	}

	cfg := g.Config()
	dc := gg.NewContext(cfg.Window.Width, cfg.Window.Height)
	defer func() { _ = dc.Close() }()

	res := &Result{Digests: make([]uint64, 0, opts.Frames)}
	frame := 0
	screen := g.NewScreen(gfx.WithPresent(func(dc *gg.Context) error {
		res.Digests = append(res.Digests, gfx.Digest(dc.Image()))
		if opts.OutDir == "" {
			return nil
		}
		return dc.SavePNG(filepath.Join(opts.OutDir, fmt.Sprintf("frame-%04d.png", frame)))
	}))
	screen.Bind(dc)

	clock := &loop.ManualClock{}
	events := input.NewQueue()
	driver, err := g.NewDriver(screen, events, loop.WithClock(clock), loop.WithFrameLimit(0))
	if err != nil {
		return nil, err
	}

	log := tilewalk.Logger()
	for ; frame < opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clock.Advance(opts.Interval)
		if opts.Script != nil {
			for _, ev := range opts.Script.Due(clock.Now()) {
				events.Push(ev)
			}
		}

		done, err := driver.Step()
		if err != nil {
			return nil, fmt.Errorf("headless: frame %d: %w", frame, err)
		}
		if done {
			res.Quit = true
			break
		}
	}

	c := driver.Character()
	res.Frames = driver.Frames()
	res.Steps = driver.Steps()
	res.SimTime = driver.SimTime()
	res.X, res.Y = c.X, c.Y
	res.Skin = c.Name()
	log.Info("headless: done",
		"frames", res.Frames, "steps", res.Steps, "sim", res.SimTime,
		"quit", res.Quit, "pending", events.Len())
	return res, nil
}

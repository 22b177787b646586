package loop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/gogpu/tilewalk"
	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/sprite"
)

// DefaultDeltaTime is the fixed simulation step.
const DefaultDeltaTime = time.Millisecond

// Driver errors.
var (
	// ErrInvalidDeltaTime is returned for a non-positive fixed step.
	ErrInvalidDeltaTime = errors.New("loop: delta time must be positive")

	// ErrMissingCollaborator is returned when NewDriver gets a nil dependency.
	ErrMissingCollaborator = errors.New("loop: missing collaborator")
)

// EventSource yields pending input events without blocking.
type EventSource interface {
	Poll() (input.Event, bool)
}

// Screen is the per-frame render target.
type Screen interface {
	sprite.Canvas

	// Clear fills the whole target with the background.
	Clear() error

	// Present shows the finished frame.
	Present() error
}

// LabelRenderer rasterizes the text overlay.
type LabelRenderer interface {
	RenderLabel(text string, col color.Color) (sprite.Texture, error)
}

// Driver is the fixed-timestep game loop. It is not safe for concurrent use.
type Driver struct {
	screen Screen
	events EventSource
	char   *sprite.Character
	labels LabelRenderer

	clock      Clock
	dt         time.Duration
	labelColor color.Color
	title      string
	limiter    *rate.Limiter
	fps        float64
	sleep      func(time.Duration)
	log        *slog.Logger

	prev  time.Duration
	acc   time.Duration
	t     time.Duration
	steps uint64

	frames    uint64
	label     sprite.Texture
	labelText string
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithDeltaTime sets the fixed simulation step. Default: 1ms.
func WithDeltaTime(dt time.Duration) Option {
	return func(d *Driver) { d.dt = dt }
}

// WithLabelColor sets the label color. Default: opaque red.
func WithLabelColor(c color.Color) Option {
	return func(d *Driver) { d.labelColor = c }
}

// WithTitle sets the label text shown when skin keys are disabled.
func WithTitle(s string) Option {
	return func(d *Driver) { d.title = s }
}

// WithFrameLimit caps Step at fps frames per second: a Step that comes too
// early sleeps until its frame slot. Zero means unlimited.
func WithFrameLimit(fps float64) Option {
	return func(d *Driver) {
		d.fps = fps
		if fps > 0 {
			d.limiter = rate.NewLimiter(rate.Limit(fps), 1)
		} else {
			d.fps = 0
			d.limiter = nil
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// NewDriver creates a loop over the given collaborators. The clock is
// sampled once here; the first Step measures elapsed time from this point.
func NewDriver(screen Screen, events EventSource, char *sprite.Character, labels LabelRenderer, opts ...Option) (*Driver, error) {
	if screen == nil || events == nil || char == nil || labels == nil {
		return nil, ErrMissingCollaborator
	}

	d := &Driver{
		screen:     screen,
		events:     events,
		char:       char,
		labels:     labels,
		dt:         DefaultDeltaTime,
		labelColor: color.NRGBA{R: 255, A: 255},
		title:      "tilewalk",
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.dt <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeltaTime, d.dt)
	}
	if d.clock == nil {
		d.clock = NewSystemClock()
	}
	if d.log == nil {
		d.log = tilewalk.Logger()
	}
	d.prev = d.clock.Now()
	return d, nil
}

// Character returns the driven character.
func (d *Driver) Character() *sprite.Character { return d.char }

// SimTime returns the simulation time: the number of steps taken times the
// fixed step.
func (d *Driver) SimTime() time.Duration { return d.t }

// Steps returns the number of integration steps taken.
func (d *Driver) Steps() uint64 { return d.steps }

// Frames returns the number of frames presented.
func (d *Driver) Frames() uint64 { return d.frames }

// Pending returns the accumulated time not yet consumed by a step.
func (d *Driver) Pending() time.Duration { return d.acc }

// FrameLimit returns the frame cap in frames per second, 0 when unlimited.
func (d *Driver) FrameLimit() float64 { return d.fps }

// Step runs one loop iteration, first waiting for its slot when a frame
// limit is set. It returns done=true, without drawing, when
// the polled event asks to quit. Any collaborator error aborts the
// iteration and is returned as is.
func (d *Driver) Step() (done bool, err error) {
	d.throttle()

	if ev, ok := d.events.Poll(); ok {
		if ev.Quits() {
			d.log.Info("loop: quit", "event", ev.String(), "frames", d.frames, "steps", d.steps)
			return true, nil
		}
		d.char.HandleKey(ev)
	}

	d.advance()

	if err := d.render(); err != nil {
		return false, err
	}
	d.frames++
	return false, nil
}

// throttle waits for the next frame slot of the limiter, if any.
func (d *Driver) throttle() {
	if d.limiter == nil {
		return
	}
	if delay := d.limiter.Reserve().Delay(); delay > 0 {
		d.sleep(delay)
	}
}

// advance moves the accumulator forward by the clock delta and drains it.
func (d *Driver) advance() {
	now := d.clock.Now()
	if now > d.prev {
		d.acc += now - d.prev
	}
	d.prev = now

	n := 0
	for d.acc >= d.dt {
		d.char.Integrate(d.t, d.dt)
		d.acc -= d.dt
		d.t += d.dt
		d.steps++
		n++
	}
	if n > 1 {
		d.log.Debug("loop: catch-up", "steps", n)
	}
}

func (d *Driver) render() error {
	if err := d.screen.Clear(); err != nil {
		return err
	}

	label, err := d.currentLabel()
	if err != nil {
		return err
	}
	w, h := label.Size()
	bounds := image.Rect(0, 0, w, h)
	if err := d.screen.Draw(label, bounds, bounds, false); err != nil {
		return err
	}

	if err := d.char.RenderTo(d.screen); err != nil {
		return err
	}
	return d.screen.Present()
}

// currentLabel returns the label texture, re-rendering it only when the
// text changed.
func (d *Driver) currentLabel() (sprite.Texture, error) {
	text := d.title
	if d.char.SkinKeys() {
		text = d.char.Name()
	}
	if d.label != nil && text == d.labelText {
		return d.label, nil
	}

	tex, err := d.labels.RenderLabel(text, d.labelColor)
	if err != nil {
		return nil, err
	}
	d.log.Debug("loop: label rendered", "text", text)
	d.label = tex
	d.labelText = text
	return tex, nil
}

// Run calls Step until it reports done, fails, or ctx is canceled.
// A canceled context is returned as ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done, err := d.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

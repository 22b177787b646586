// Package window runs the demo in a gogpu window. Frames are drawn with gg
// into a ggcanvas and rendered straight to the window surface.
package window

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tilewalk"
	"github.com/gogpu/tilewalk/gfx"
	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/internal/game"
	"github.com/gogpu/tilewalk/loop"
)

// Run opens the configured window and drives g until the user quits, ctx
// is canceled, or a frame fails. The first error is returned.
func Run(ctx context.Context, g *game.Game) error {
	cfg := g.Config()
	log := tilewalk.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Window.Title).
		WithSize(cfg.Window.Width, cfg.Window.Height).
		WithContinuousRender(true))

	events := input.NewQueue()
	BindKeys(app.EventSource(), events)
	app.OnClose(func() { events.Push(input.Quit()) })

	screen := g.NewScreen()
	driver, err := g.NewDriver(screen, events)
	if err != nil {
		return err
	}

	h := &host{app: app, quit: app.Quit, screen: screen, driver: driver, log: log}
	app.OnDraw(func(dc *gogpu.Context) { h.draw(ctx, dc) })

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if h.err != nil {
		return h.err
	}
	log.Info("window: closed", "frames", driver.Frames(), "steps", driver.Steps(), "sim", driver.SimTime())
	return ctx.Err()
}

// stepper runs one loop iteration.
type stepper interface {
	Step() (done bool, err error)
}

var _ stepper = (*loop.Driver)(nil)

// frameCanvas runs a drawing function against its gg.Context.
type frameCanvas interface {
	Draw(fn func(*gg.Context)) error
}

type host struct {
	app    *gogpu.App
	quit   func()
	screen *gfx.Canvas
	driver stepper
	log    *slog.Logger

	canvas *ggcanvas.Canvas
	err    error
	done   bool
}

func (h *host) draw(ctx context.Context, dc *gogpu.Context) {
	if h.done {
		return
	}
	if err := ctx.Err(); err != nil {
		h.stop(nil)
		return
	}

	w, ht := dc.Width(), dc.Height()
	if w <= 0 || ht <= 0 {
		return
	}
	if err := h.ensureCanvas(dc, w, ht); err != nil {
		h.stop(err)
		return
	}
	if !h.frame(ctx, h.canvas) {
		return
	}

	sw, sh := dc.SurfaceSize()
	if err := h.canvas.RenderDirect(dc.RenderTarget().SurfaceView(), sw, sh); err != nil {
		h.stop(fmt.Errorf("window: present: %w", err))
	}
}

// frame runs one driver step inside cv and reports whether the result should
// be presented. Quit, cancellation and errors stop the app instead.
func (h *host) frame(ctx context.Context, cv frameCanvas) bool {
	if h.done {
		return false
	}
	if err := ctx.Err(); err != nil {
		h.stop(nil)
		return false
	}

	var (
		quit    bool
		stepErr error
	)
	err := cv.Draw(func(cc *gg.Context) {
		h.screen.Bind(cc)
		quit, stepErr = h.driver.Step()
	})
	switch {
	case stepErr != nil:
		h.stop(stepErr)
	case err != nil:
		h.stop(fmt.Errorf("window: draw: %w", err))
	case quit:
		h.stop(nil)
	default:
		return true
	}
	return false
}

func (h *host) ensureCanvas(dc *gogpu.Context, w, ht int) error {
	if h.canvas == nil {
		provider := h.app.GPUContextProvider()
		if provider == nil {
			return fmt.Errorf("window: no GPU context provider")
		}
		h.log.Info("window: gpu ready", append(providerAttrs(provider), "backend", fmt.Sprint(dc.Backend()))...)
		if provider.SurfaceFormat() == gputypes.TextureFormatUndefined {
			h.log.Warn("window: surface format undefined")
		}
		canvas, err := ggcanvas.New(provider, w, ht)
		if err != nil {
			return fmt.Errorf("window: canvas: %w", err)
		}
		h.canvas = canvas
		return nil
	}
	if cw, ch := h.canvas.Size(); cw != w || ch != ht {
		h.log.Debug("window: resize", "width", w, "height", ht)
		if err := h.canvas.Resize(w, ht); err != nil {
			return fmt.Errorf("window: resize: %w", err)
		}
	}
	return nil
}

// stop keeps the first error and asks the app to quit once.
func (h *host) stop(err error) {
	if h.done {
		return
	}
	h.done = true
	h.err = err
	h.quit()
}

// providerAttrs describes the GPU behind p for logging.
func providerAttrs(p gpucontext.DeviceProvider) []any {
	info := p.AdapterInfo()
	return []any{
		"adapter", info.Name,
		"type", info.Type.String(),
		"format", fmt.Sprint(p.SurfaceFormat()),
	}
}

package window

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tilewalk/gfx"
	"github.com/gogpu/tilewalk/input"
)

type fakeEvents struct {
	gpucontext.NullEventSource
	press, release func(gpucontext.Key, gpucontext.Modifiers)
}

func (f *fakeEvents) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers))   { f.press = fn }
func (f *fakeEvents) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { f.release = fn }

func TestBindKeys(t *testing.T) {
	src := &fakeEvents{}
	q := input.NewQueue()
	BindKeys(src, q)
	if src.press == nil || src.release == nil {
		t.Fatal("BindKeys() did not register both callbacks")
	}

	src.press(gpucontext.KeyRight, 0)
	src.press(gpucontext.KeySpace, 0)
	src.release(gpucontext.KeyRight, 0)
	src.press(gpucontext.Key3, 0)
	src.press(gpucontext.KeyEscape, 0)

	want := []input.Event{
		input.Down(input.KeyRight),
		input.Up(input.KeyRight),
		input.Down(input.Key3),
		input.Down(input.KeyEscape),
	}
	if q.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", q.Len(), len(want))
	}
	for i, w := range want {
		got, ok := q.Poll()
		if !ok || got != w {
			t.Errorf("event %d = %v, %v, want %v", i, got, ok, w)
		}
	}
}

type fakeProvider struct {
	info   gpucontext.AdapterInfo
	format gputypes.TextureFormat
}

func (p fakeProvider) Device() gpucontext.Device             { return nil }
func (p fakeProvider) Queue() gpucontext.Queue               { return nil }
func (p fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (p fakeProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }
func (p fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return p.info }

func TestProviderAttrs(t *testing.T) {
	p := fakeProvider{
		info:   gpucontext.AdapterInfo{Name: "Software Renderer", Type: gpucontext.AdapterTypeSoftware},
		format: gputypes.TextureFormatBGRA8Unorm,
	}
	attrs := providerAttrs(p)
	if len(attrs) != 6 {
		t.Fatalf("len(providerAttrs()) = %d, want 6", len(attrs))
	}
	got := map[any]any{}
	for i := 0; i < len(attrs); i += 2 {
		got[attrs[i]] = attrs[i+1]
	}
	if got["adapter"] != "Software Renderer" {
		t.Errorf("adapter = %v, want Software Renderer", got["adapter"])
	}
	if got["type"] != "Software" {
		t.Errorf("type = %v, want Software", got["type"])
	}
	if got["format"] == "" {
		t.Error("format is empty")
	}
}

type fakeStepper struct {
	calls int
	done  bool
	err   error
	bound bool
	dc    *gg.Context
	cv    *gfx.Canvas
}

func (s *fakeStepper) Step() (bool, error) {
	s.calls++
	s.bound = s.cv.Context() == s.dc
	return s.done, s.err
}

type fakeCanvas struct {
	dc  *gg.Context
	err error
}

func (c *fakeCanvas) Draw(fn func(*gg.Context)) error {
	fn(c.dc)
	return c.err
}

func newTestHost(t *testing.T) (*host, *fakeStepper, *fakeCanvas, *int) {
	t.Helper()
	dc := gg.NewContext(8, 8)
	t.Cleanup(func() { _ = dc.Close() })
	screen := gfx.NewCanvas(nil)
	st := &fakeStepper{dc: dc, cv: screen}
	quits := 0
	h := &host{quit: func() { quits++ }, screen: screen, driver: st, log: slog.New(slog.DiscardHandler)}
	return h, st, &fakeCanvas{dc: dc}, &quits
}

func TestHostFramePresents(t *testing.T) {
	h, st, cv, quits := newTestHost(t)
	for i := 0; i < 3; i++ {
		if !h.frame(context.Background(), cv) {
			t.Fatalf("frame() = false on frame %d, want true", i)
		}
	}
	if st.calls != 3 || !st.bound {
		t.Errorf("Step calls = %d, bound = %v, want 3, true", st.calls, st.bound)
	}
	if *quits != 0 || h.done || h.err != nil {
		t.Errorf("quits = %d, done = %v, err = %v, want a running host", *quits, h.done, h.err)
	}
}

func TestHostFrameStops(t *testing.T) {
	boom := errors.New("boom")
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name      string
		ctx       context.Context
		done      bool
		stepErr   error
		drawErr   error
		wantErr   error
		wantSteps int
	}{
		{name: "quit", ctx: context.Background(), done: true, wantSteps: 1},
		{name: "step error", ctx: context.Background(), stepErr: boom, wantErr: boom, wantSteps: 1},
		{name: "draw error", ctx: context.Background(), drawErr: boom, wantErr: boom, wantSteps: 1},
		{name: "canceled", ctx: canceled, wantSteps: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, st, cv, quits := newTestHost(t)
			st.done, st.err = tt.done, tt.stepErr
			cv.err = tt.drawErr

			if h.frame(tt.ctx, cv) {
				t.Error("frame() = true, want false")
			}
			if st.calls != tt.wantSteps {
				t.Errorf("Step calls = %d, want %d", st.calls, tt.wantSteps)
			}
			if !h.done || *quits != 1 {
				t.Errorf("done = %v, quits = %d, want true, 1", h.done, *quits)
			}
			if tt.wantErr == nil && h.err != nil {
				t.Errorf("err = %v, want nil", h.err)
			}
			if tt.wantErr != nil && !errors.Is(h.err, tt.wantErr) {
				t.Errorf("err = %v, want %v", h.err, tt.wantErr)
			}

			// Later frames do nothing and quit is not requested again.
			if h.frame(context.Background(), cv) {
				t.Error("frame() after stop = true, want false")
			}
			if st.calls != tt.wantSteps || *quits != 1 {
				t.Errorf("after stop: Step calls = %d, quits = %d", st.calls, *quits)
			}
		})
	}
}

func TestHostStopKeepsFirstError(t *testing.T) {
	h, _, _, quits := newTestHost(t)
	first := errors.New("first")
	h.stop(first)
	h.stop(errors.New("second"))
	if !errors.Is(h.err, first) || *quits != 1 {
		t.Errorf("err = %v, quits = %d, want first, 1", h.err, *quits)
	}
}

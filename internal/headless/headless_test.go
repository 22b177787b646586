package headless

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/internal/assettest"
	"github.com/gogpu/tilewalk/internal/config"
	"github.com/gogpu/tilewalk/internal/game"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	tileset, font := assettest.Write(t, t.TempDir())
	cfg := config.Default()
	cfg.Assets.Tileset = tileset
	cfg.Assets.Font = font
	cfg.Assets.FontSize = 16
	cfg.Window.Width, cfg.Window.Height = 320, 240

	g, err := game.Load(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func script(t *testing.T, body string) *input.Script {
	t.Helper()
	s, err := input.ParseScript([]byte(body))
	require.NoError(t, err)
	return s
}

func TestRunIdle(t *testing.T) {
	res, err := Run(context.Background(), newGame(t), Options{Frames: 10, Interval: time.Millisecond})
	require.NoError(t, err)
	require.False(t, res.Quit)
	require.EqualValues(t, 10, res.Frames)
	require.EqualValues(t, 10, res.Steps)
	require.Equal(t, 10*time.Millisecond, res.SimTime)
	require.Len(t, res.Digests, 10)
	// Still within the first animation frame, so nothing changes.
	for _, d := range res.Digests {
		require.Equal(t, res.Digests[0], d)
	}
	require.Equal(t, 64.0, res.X)
	require.Equal(t, 112.0, res.Y)
	require.Equal(t, "Elf (F)", res.Skin)
}

func TestRunScriptedWalk(t *testing.T) {
	s := script(t, `
- at: 0s
  down: right
- at: 100ms
  up: right
`)
	res, err := Run(context.Background(), newGame(t), Options{Frames: 8, Script: s})
	require.NoError(t, err)
	require.True(t, s.Done())
	require.EqualValues(t, 8*16, res.Steps)
	// Right is held for frames 0..5, 16 steps each, at 0.3 per step.
	require.InDelta(t, 64+96*0.3, res.X, 1e-9)
	require.Equal(t, 112.0, res.Y)
	require.NotEqual(t, res.Digests[0], res.Digests[7])
}

func TestRunScriptedQuit(t *testing.T) {
	s := script(t, `
- at: 32ms
  quit: true
`)
	res, err := Run(context.Background(), newGame(t), Options{Frames: 100, Script: s})
	require.NoError(t, err)
	require.True(t, res.Quit)
	require.EqualValues(t, 1, res.Frames)
	require.EqualValues(t, 16, res.Steps)
	require.Len(t, res.Digests, 1)
}

func TestRunEscapeQuits(t *testing.T) {
	s := script(t, "- at: 0s\n  down: escape\n")
	res, err := Run(context.Background(), newGame(t), Options{Frames: 5, Script: s})
	require.NoError(t, err)
	require.True(t, res.Quit)
	require.Zero(t, res.Frames)
}

func TestRunSkinSwitch(t *testing.T) {
	s := script(t, "- at: 0s\n  down: \"3\"\n")
	res, err := Run(context.Background(), newGame(t), Options{Frames: 2, Script: s})
	require.NoError(t, err)
	require.Equal(t, "Knight (F)", res.Skin)
}

func TestRunDeterministic(t *testing.T) {
	body := "- at: 0s\n  down: left\n- at: 50ms\n  down: \"5\"\n"
	g := newGame(t)
	a, err := Run(context.Background(), g, Options{Frames: 12, Script: script(t, body)})
	require.NoError(t, err)
	b, err := Run(context.Background(), g, Options{Frames: 12, Script: script(t, body)})
	require.NoError(t, err)
	require.Equal(t, a.Digests, b.Digests)
	require.Equal(t, a.X, b.X)
}

func TestRunWritesFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")
	_, err := Run(context.Background(), newGame(t), Options{Frames: 3, OutDir: out})
	require.NoError(t, err)

	for _, name := range []string{"frame-0000.png", "frame-0001.png", "frame-0002.png"} {
		f, err := os.Open(filepath.Join(out, name))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		_ = f.Close()
		require.NoError(t, err)
		require.Equal(t, 320, cfg.Width)
		require.Equal(t, 240, cfg.Height)
	}
	_, err = os.Stat(filepath.Join(out, "frame-0003.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunErrors(t *testing.T) {
	g := newGame(t)
	_, err := Run(context.Background(), g, Options{})
	require.ErrorIs(t, err, ErrNoFrames)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, g, Options{Frames: 1})
	require.ErrorIs(t, err, context.Canceled)
}

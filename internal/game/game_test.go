package game

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/internal/assettest"
	"github.com/gogpu/tilewalk/internal/config"
	"github.com/gogpu/tilewalk/loop"
	"github.com/gogpu/tilewalk/sprite"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tileset, font := assettest.Write(t, t.TempDir())
	cfg := config.Default()
	cfg.Assets.Tileset = tileset
	cfg.Assets.Font = font
	cfg.Assets.FontSize = 16
	return cfg
}

func loadGame(t *testing.T, cfg *config.Config) *Game {
	t.Helper()
	g, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func near(a, b uint32) bool {
	d := int(a>>8) - int(b>>8)
	return d >= -3 && d <= 3
}

func TestLoad(t *testing.T) {
	g := loadGame(t, testConfig(t))
	if w, h := g.Tileset().Size(); w != assettest.Size || h != assettest.Size {
		t.Errorf("Tileset().Size() = %dx%d, want %dx%d", w, h, assettest.Size, assettest.Size)
	}
	if g.Font().Size() != 16 {
		t.Errorf("Font().Size() = %v, want 16", g.Font().Size())
	}
}

func TestLoadMissingAssets(t *testing.T) {
	cfg := testConfig(t)
	cfg.Assets.Tileset = filepath.Join(t.TempDir(), "missing.png")
	if _, err := Load(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() with missing tileset = %v, want ErrNotExist", err)
	}

	cfg = testConfig(t)
	cfg.Assets.Font = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := Load(cfg); err == nil {
		t.Error("Load() with missing font succeeded")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Physics.DeltaTime = 0
	if _, err := Load(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}

func TestNewCharacter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Physics.Motion = "discrete"
	cfg.Physics.Step = 8
	cfg.Character.X, cfg.Character.Y = 10, 20
	cfg.Character.Skin = 3
	cfg.Character.SkinKeys = false
	g := loadGame(t, cfg)

	c, err := g.NewCharacter()
	if err != nil {
		t.Fatalf("NewCharacter() = %v", err)
	}
	if c.Motion() != sprite.MotionDiscrete {
		t.Errorf("Motion() = %v, want discrete", c.Motion())
	}
	if c.X != 10 || c.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", c.X, c.Y)
	}
	if c.Row() != 68 {
		t.Errorf("Row() = %d, want 68", c.Row())
	}
	if c.SkinKeys() {
		t.Error("SkinKeys() = true, want false")
	}

	c.HandleKey(input.Down(input.KeyRight))
	if c.X != 18 {
		t.Errorf("X after right = %v, want 18", c.X)
	}
}

func TestNewDriverRendersFrame(t *testing.T) {
	g := loadGame(t, testConfig(t))

	dc := gg.NewContext(g.Config().Window.Width, g.Config().Window.Height)
	t.Cleanup(func() { _ = dc.Close() })
	screen := g.NewScreen()
	screen.Bind(dc)

	clock := &loop.ManualClock{}
	q := input.NewQueue()
	d, err := g.NewDriver(screen, q, loop.WithClock(clock))
	if err != nil {
		t.Fatalf("NewDriver() = %v", err)
	}

	clock.Advance(5 * time.Millisecond)
	done, err := d.Step()
	if err != nil || done {
		t.Fatalf("Step() = %v, %v, want false, nil", done, err)
	}
	if d.Steps() != 5 {
		t.Errorf("Steps() = %d, want 5", d.Steps())
	}

	// The idle cell of the first skin fills the character's rectangle.
	dst := d.Character().DestRect()
	center := image.Pt((dst.Min.X+dst.Max.X)/2, (dst.Min.Y+dst.Max.Y)/2)
	r1, g1, b1, a1 := dc.Image().At(center.X, center.Y).RGBA()
	r2, g2, b2, a2 := assettest.CellColor(sprite.DefaultIdleOffset, 4).RGBA()
	if !near(r1, r2) || !near(g1, g2) || !near(b1, b2) || !near(a1, a2) {
		t.Errorf("pixel %v = %v, want %v", center, dc.Image().At(center.X, center.Y), assettest.CellColor(sprite.DefaultIdleOffset, 4))
	}

	// Background stays black far from the label and the character.
	if _, _, _, a := dc.Image().At(700, 500).RGBA(); a>>8 != 0xff {
		t.Errorf("background alpha = %d, want 255", a>>8)
	}

	q.Push(input.Down(input.KeyEscape))
	if done, err := d.Step(); err != nil || !done {
		t.Errorf("Step() after escape = %v, %v, want true, nil", done, err)
	}
}

func TestNewDriverFrameLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.FrameLimit = 5
	g := loadGame(t, cfg)

	d, err := g.NewDriver(g.NewScreen(), input.NewQueue())
	if err != nil {
		t.Fatalf("NewDriver() = %v", err)
	}
	if d.FrameLimit() != 5 {
		t.Errorf("FrameLimit() = %v, want 5", d.FrameLimit())
	}
}

// Package game assembles a playable demo from a configuration: it loads
// the assets, builds the character and hands both to a loop.Driver.
package game

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/tilewalk"
	"github.com/gogpu/tilewalk/gfx"
	"github.com/gogpu/tilewalk/internal/config"
	"github.com/gogpu/tilewalk/loop"
	"github.com/gogpu/tilewalk/sprite"
)

// Game owns the loaded assets.
type Game struct {
	cfg     *config.Config
	tileset *gfx.Texture
	font    *gfx.Font
	log     *slog.Logger
}

// Load reads the tileset and font named by cfg. Both are required.
func Load(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tileset, err := gfx.LoadTexture(cfg.Assets.Tileset)
	if err != nil {
		return nil, fmt.Errorf("game: tileset: %w", err)
	}
	font, err := gfx.LoadFont(cfg.Assets.Font, cfg.Assets.FontSize)
	if err != nil {
		return nil, fmt.Errorf("game: font: %w", err)
	}
	return New(cfg, tileset, font), nil
}

// New wraps already loaded assets.
func New(cfg *config.Config, tileset *gfx.Texture, font *gfx.Font) *Game {
	g := &Game{cfg: cfg, tileset: tileset, font: font, log: tilewalk.Logger()}
	w, h := tileset.Size()
	g.log.Info("game: assets ready",
		"tileset", cfg.Assets.Tileset, "width", w, "height", h,
		"font", font.Name(), "size", font.Size())
	return g
}

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config { return g.cfg }

// Tileset returns the sprite sheet texture.
func (g *Game) Tileset() *gfx.Texture { return g.tileset }

// Font returns the label font.
func (g *Game) Font() *gfx.Font { return g.font }

// NewCharacter creates a character with the configured geometry, motion
// model and starting state.
func (g *Game) NewCharacter() (*sprite.Character, error) {
	motion, err := sprite.ParseMotion(g.cfg.Physics.Motion)
	if err != nil {
		return nil, err
	}
	c := g.cfg.Character
	opts := []sprite.Option{
		sprite.WithMotion(motion),
		sprite.WithSpeed(g.cfg.Physics.Speed),
		sprite.WithStep(g.cfg.Physics.Step),
		sprite.WithPosition(c.X, c.Y),
		sprite.WithSkin(c.Skin),
	}
	if !c.SkinKeys {
		opts = append(opts, sprite.WithoutSkinKeys())
	}
	return sprite.NewCharacter(g.cfg.SpriteSheet(g.tileset), opts...), nil
}

// NewScreen creates an unbound canvas with the configured background.
// The caller binds a gg.Context before the first frame.
func (g *Game) NewScreen(opts ...gfx.CanvasOption) *gfx.Canvas {
	return gfx.NewCanvas(nil, append([]gfx.CanvasOption{gfx.WithBackground(g.cfg.BackgroundColor())}, opts...)...)
}

// NewDriver creates a character and a loop driving it on screen.
// Extra options are applied after the configured ones.
func (g *Game) NewDriver(screen loop.Screen, events loop.EventSource, opts ...loop.Option) (*loop.Driver, error) {
	char, err := g.NewCharacter()
	if err != nil {
		return nil, err
	}
	base := []loop.Option{
		loop.WithDeltaTime(g.cfg.Physics.DeltaTime),
		loop.WithLabelColor(g.cfg.LabelColor()),
		loop.WithTitle(g.cfg.Window.Title),
		loop.WithFrameLimit(g.cfg.FrameLimit),
	}
	d, err := loop.NewDriver(screen, events, char, g.font, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.log.Debug("game: driver ready",
		"motion", char.Motion().String(), "dt", g.cfg.Physics.DeltaTime, "skin", char.Name())
	return d, nil
}

// Close releases the font.
func (g *Game) Close() error {
	if g.font == nil {
		return nil
	}
	return g.font.Close()
}

// Package config loads the demo configuration: an embedded default YAML
// document overlaid by user files in order.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg"
	"github.com/gogpu/tilewalk/sprite"
)

//go:embed default.yaml
var DefaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Default returns the embedded default configuration.
func Default() *Config {
	cfg := &Config{}
	if err := decode(DefaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default is broken: %v", err))
	}
	return cfg
}

// Load applies the files at paths, in order, over the defaults and
// validates the result. Keys missing from a file keep their previous value.
func Load(paths ...string) (*Config, error) {
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every field that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(isColor(c.Window.Background), "window background %q", c.Window.Background)
	check(c.Assets.Tileset != "", "assets.tileset is empty")
	check(c.Assets.Font != "", "assets.font is empty")
	check(c.Assets.FontSize > 0, "assets.fontSize %v", c.Assets.FontSize)
	check(isColor(c.Label.Color), "label color %q", c.Label.Color)
	check(c.Physics.DeltaTime > 0, "physics.deltaTime %v", c.Physics.DeltaTime)
	check(c.Physics.Speed >= 0, "physics.speed %v", c.Physics.Speed)
	check(c.Physics.Step >= 0, "physics.step %v", c.Physics.Step)
	check(c.FrameLimit >= 0, "frameLimit %v", c.FrameLimit)
	if _, err := sprite.ParseMotion(c.Physics.Motion); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if _, err := sprite.SkinNumber(c.Character.Skin); err != nil {
		errs = append(errs, fmt.Errorf("%w: character.skin: %w", ErrInvalid, err))
	}
	if err := c.SpriteSheet(nil).Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

func isColor(s string) bool {
	_, err := gg.ParseHex(s)
	return err == nil
}

// BackgroundColor returns the parsed window background.
func (c *Config) BackgroundColor() gg.RGBA { return gg.Hex(c.Window.Background) }

// LabelColor returns the parsed label color.
func (c *Config) LabelColor() gg.RGBA { return gg.Hex(c.Label.Color) }

// SpriteSheet returns the sheet geometry bound to tex.
func (c *Config) SpriteSheet(tex sprite.Texture) sprite.Sheet {
	return sprite.Sheet{
		Texture:       tex,
		CellWidth:     c.Sheet.CellWidth,
		CellHeight:    c.Sheet.CellHeight,
		RenderWidth:   c.Sheet.RenderWidth,
		RenderHeight:  c.Sheet.RenderHeight,
		IdleOffset:    c.Sheet.IdleOffset,
		MovingOffset:  c.Sheet.MovingOffset,
		Frames:        c.Animation.Frames,
		FrameDuration: c.Animation.FrameDuration,
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

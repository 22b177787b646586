package config

import "time"

// Window configures the host window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// Assets lists the files loaded at startup, relative to the working
// directory.
type Assets struct {
	Tileset  string  `yaml:"tileset"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"fontSize"`
}

// Label configures the text overlay. The window title is shown when skin
// keys are disabled; otherwise the skin name is.
type Label struct {
	Color string `yaml:"color"`
}

// Physics configures the fixed-timestep simulation.
type Physics struct {
	Motion    string        `yaml:"motion"`
	DeltaTime time.Duration `yaml:"deltaTime"`
	Speed     float64       `yaml:"speed"`
	Step      float64       `yaml:"step"`
}

// Animation configures frame timing.
type Animation struct {
	FrameDuration time.Duration `yaml:"frameDuration"`
	Frames        int           `yaml:"frames"`
}

// Sheet is the tileset cell geometry.
type Sheet struct {
	CellWidth    int `yaml:"cellWidth"`
	CellHeight   int `yaml:"cellHeight"`
	RenderWidth  int `yaml:"renderWidth"`
	RenderHeight int `yaml:"renderHeight"`
	IdleOffset   int `yaml:"idleOffset"`
	MovingOffset int `yaml:"movingOffset"`
}

// Character is the initial character state.
type Character struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Skin     int     `yaml:"skin"`
	SkinKeys bool    `yaml:"skinKeys"`
}

// Config is the complete demo configuration.
type Config struct {
	Window     Window    `yaml:"window"`
	Assets     Assets    `yaml:"assets"`
	Label      Label     `yaml:"label"`
	Physics    Physics   `yaml:"physics"`
	Animation  Animation `yaml:"animation"`
	Sheet      Sheet     `yaml:"sheet"`
	Character  Character `yaml:"character"`
	FrameLimit float64   `yaml:"frameLimit"`
}

// Command tilewalk runs the sprite-walking demo in a window or headless.
//
// With no arguments it opens the window using tileset.png and mago1.ttf from
// the working directory. The tileset has 16x28 character cells (idle strip
// at x=128, moving strip at x=192, one skin row every 32 pixels from y=4).
// Point --config at a YAML file to use other paths:
//
//	tilewalk config > my.yaml
//	tilewalk --config my.yaml
//	tilewalk headless --frames 120 --out frames --script walk.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/gogpu/tilewalk"
	"github.com/gogpu/tilewalk/input"
	"github.com/gogpu/tilewalk/internal/config"
	"github.com/gogpu/tilewalk/internal/game"
	"github.com/gogpu/tilewalk/internal/headless"
	"github.com/gogpu/tilewalk/internal/logging"
	"github.com/gogpu/tilewalk/internal/window"
)

// CLI is the kong command-line grammar.
var CLI struct {
	Version bool     `help:"Print version information and exit." short:"v"`
	Debug   bool     `help:"Enable debug logging."`
	Config  []string `help:"Configuration files applied over the defaults, in order." short:"c" type:"existingfile"`

	Run struct{} `cmd:"" default:"1" help:"Open the window and play (default)."`

	Headless struct {
		Frames   int           `help:"Number of frames to draw." default:"60"`
		Interval time.Duration `help:"Simulated time between frames." default:"16ms"`
		Out      string        `help:"Directory for frame-NNNN.png files." type:"path"`
		Script   string        `help:"YAML input script to replay." type:"existingfile"`
	} `cmd:"" help:"Draw frames offscreen against a simulated clock."`

	Dump struct {
		Effective bool `help:"Print the merged configuration instead of the defaults."`
	} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("tilewalk"),
		kong.Description("a fixed-timestep sprite walking demo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	log := logging.NewConsole(os.Stderr, CLI.Debug)
	tilewalk.SetLogger(log)
	if CLI.Debug {
		log.Warn("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf("tilewalk %s\n", tilewalk.Version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch kctx.Command() {
	case "run":
		err = runCommand(ctx)
	case "headless":
		err = headlessCommand(ctx)
	case "config":
		err = configCommand()
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		stop()
		writeError(err)
	}
}

func loadGame() (*game.Game, error) {
	cfg, err := config.Load(CLI.Config...)
	if err != nil {
		return nil, err
	}
	return game.Load(cfg)
}

func runCommand(ctx context.Context) error {
	g, err := loadGame()
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	err = window.Run(ctx, g)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func headlessCommand(ctx context.Context) error {
	opts := headless.Options{
		Frames:   CLI.Headless.Frames,
		Interval: CLI.Headless.Interval,
		OutDir:   CLI.Headless.Out,
	}
	if CLI.Headless.Script != "" {
		s, err := input.LoadScript(CLI.Headless.Script)
		if err != nil {
			return err
		}
		opts.Script = s
	}

	g, err := loadGame()
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	res, err := headless.Run(ctx, g, opts)
	if err != nil {
		return err
	}
	for i, d := range res.Digests {
		fmt.Printf("%04d %016x\n", i, d)
	}
	fmt.Printf("frames=%d steps=%d sim=%v x=%.2f y=%.2f skin=%q quit=%t\n",
		res.Frames, res.Steps, res.SimTime, res.X, res.Y, res.Skin, res.Quit)
	return nil
}

func configCommand() error {
	if !CLI.Dump.Effective {
		_, err := os.Stdout.Write(config.DefaultYAML)
		return err
	}
	cfg, err := config.Load(CLI.Config...)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

package main

import (
	"fmt"
	"maps"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/cmd/balatro-advisor/shared"
	"github.com/lox/balatro-advisor/internal/config"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug      bool             `help:"Enable debug logging"`
	Structured bool             `help:"Log in logfmt instead of console format"`
	Config     string           `help:"Path to HCL config file" type:"path" default:"balatro.hcl" env:"BALATRO_ADVISOR_CONFIG"`
	NoColor    bool             `help:"Disable colored output"`
	Level      map[string]int   `help:"Hand level override, e.g. --level Pair=3 (repeatable)" placeholder:"HAND=LEVEL"`
	Version    kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Score     ScoreCmd     `cmd:"" help:"Score a played hand"`
	Best      BestCmd      `cmd:"" help:"Find the best five card play in a hand"`
	Recommend RecommendCmd `cmd:"" help:"Recommend whether to play or discard"`
	Scenario  ScenarioCmd  `cmd:"" help:"Analyse a built-in or file scenario"`
	Batch     BatchCmd     `cmd:"" help:"Analyse every scenario in one or more files"`
	Reference ReferenceCmd `cmd:"" help:"Show hand values and card modifiers"`
	Demo      DemoCmd      `cmd:"" help:"Run the interactive demo menu"`
	Serve     ServeCmd     `cmd:"" help:"Serve the advisor over websocket"`
	Watch     WatchCmd     `cmd:"" help:"Re-analyse a scenario file whenever it changes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("balatro-advisor"),
		kong.Description("Balatro hand scoring and play advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// env is what a command needs after the global flags are applied
type env struct {
	cfg    *config.Config
	logger *log.Logger
	levels scoring.LevelTable
}

// setup loads config, applies the global flags and builds the logger.
// Levels given with --level override those in the config file.
func (g *Globals) setup() (*env, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if g.Debug {
		level = log.DebugLevel
	}
	logger := shared.SetupLogger(level)
	if g.Structured {
		logger = shared.SetupStructuredLogger(level)
	}

	merged := make(map[string]int, len(cfg.Levels)+len(g.Level))
	maps.Copy(merged, cfg.Levels)
	maps.Copy(merged, g.Level)
	cfg.Levels = merged
	levels, err := cfg.LevelTable()
	if err != nil {
		return nil, fmt.Errorf("invalid --level: %w", err)
	}

	logger.Debug("Configuration loaded", "config", g.Config, "log_level", level, "upgraded", len(levels.Upgraded()))
	return &env{cfg: cfg, logger: logger, levels: levels}, nil
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// Package config loads settings shared by the tetromino binaries from the
// environment, with command-line flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/plus3/tetromino/tetris"
)

// Config holds frontend and tooling configuration.
type Config struct {
	Width        int           `env:"TETROMINO_WIDTH"         envDefault:"10"`
	Height       int           `env:"TETROMINO_HEIGHT"        envDefault:"20"`
	Seed         uint64        `env:"TETROMINO_SEED"`
	DropInterval time.Duration `env:"TETROMINO_DROP_INTERVAL" envDefault:"1s"`
	LevelLines   int           `env:"TETROMINO_LEVEL_LINES"   envDefault:"10"`
	LogLevel     string        `env:"TETROMINO_LOG_LEVEL"     envDefault:"info"`
	LogFile      string        `env:"TETROMINO_LOG_FILE"`
	DebugUI      bool          `env:"TETROMINO_DEBUG_UI"`
	Sound        bool          `env:"TETROMINO_SOUND"         envDefault:"true"`
}

// ParseConfig reads the environment and then applies flags parsed from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "piece sequence seed (0 picks one at random)")
	fs.DurationVar(&cfg.DropInterval, "drop-interval", cfg.DropInterval, "gravity interval at level 1")
	fs.IntVar(&cfg.LevelLines, "level-lines", cfg.LevelLines, "cleared lines per level (0 disables speed-up)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	fs.BoolVar(&cfg.DebugUI, "debug", cfg.DebugUI, "show the debug overlay")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings no engine or driver could run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height))
	}
	if c.DropInterval <= 0 {
		errs = append(errs, fmt.Errorf("drop interval %s must be positive", c.DropInterval))
	}
	if c.LevelLines < 0 {
		errs = append(errs, fmt.Errorf("level lines %d must not be negative", c.LevelLines))
	}
	return errors.Join(errs...)
}

// EngineOptions returns the engine options implied by the configuration.
func (c Config) EngineOptions() []tetris.Option {
	if c.Seed == 0 {
		return nil
	}
	return []tetris.Option{tetris.WithSeed(c.Seed)}
}

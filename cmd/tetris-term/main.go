package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/config"
	"github.com/plus3/tetromino/internal/logging"
	"github.com/plus3/tetromino/tetris"
)

const frameInterval = 16 * time.Millisecond

func main() {
	_ = godotenv.Load()

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// stderr belongs to the terminal UI, so only log when a file is given.
	logger := zerolog.Nop()
	closeLog := func() error { return nil }
	if cfg.LogFile != "" {
		logger, closeLog, err = logging.Open(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	snd := newSound(cfg.Sound, logger)
	defer snd.close()

	opts := append(cfg.EngineOptions(), tetris.WithLockHandler(snd.onLock))
	engine, err := tetris.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}
	engine.NewGame()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	d := driver.New(engine, driver.WithLogger(logger))
	gravity := &driver.GravitySystem{Interval: cfg.DropInterval, LevelLines: cfg.LevelLines}
	d.Register(gravity)

	r := &renderer{screen: screen, gravity: gravity}
	loop(screen, d, r)
	return nil
}

// loop runs until the player quits. Events are read on their own goroutine;
// the driver is only touched here.
func loop(screen tcell.Screen, d *driver.Driver, r *renderer) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	last := time.Now()
	r.draw(d.Engine())
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev.Key(), ev.Rune()) {
					return
				}
				if a, ok := actionForKey(ev.Key(), ev.Rune()); ok {
					d.Send(a)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			d.Once(now.Sub(last).Seconds())
			last = now
			r.draw(d.Engine())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed, then closes events.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

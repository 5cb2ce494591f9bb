package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/autoplay"
	"github.com/plus3/tetromino/internal/config"
	"github.com/plus3/tetromino/internal/logging"
	"github.com/plus3/tetromino/tetris"
)

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("tetris-stress", flag.ExitOnError)
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	maxPieces := fs.Int("max-pieces", 5000, "End a game after this many pieces even if it is not over.")
	cfg, err := config.ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	report := NewReport()
	report.Duration = *duration
	report.Width = cfg.Width
	report.Height = cfg.Height
	report.Seed = cfg.Seed
	report.MaxPieces = *maxPieces

	logger.Info().Dur("duration", *duration).Int("width", cfg.Width).Int("height", cfg.Height).Msg("starting stress test")

	runtime.ReadMemStats(&report.MemStatsStart)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	for game := 0; ctx.Err() == nil; game++ {
		if err := playGame(ctx, cfg, uint64(game), *maxPieces, report, logger); err != nil {
			logger.Fatal().Err(err).Msg("game failed")
		}
	}
	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Int("games", report.Games).Int64("lines", report.TotalLines).Msg("stress test complete")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}

// playGame runs one bot-driven game until it ends, reaches maxPieces, or ctx
// expires.
func playGame(ctx context.Context, cfg config.Config, game uint64, maxPieces int, report *Report, logger zerolog.Logger) error {
	pieces := 0
	engine, err := tetris.New(cfg.Width, cfg.Height,
		gameRandomizer(cfg.Seed, game),
		tetris.WithLockHandler(func(ev tetris.LockEvent) {
			pieces++
			report.RecordLock(ev.Lines)
		}),
	)
	if err != nil {
		return err
	}

	d := driver.New(engine, driver.WithLogger(logger.With().Uint64("game", game).Logger()))
	d.Send(driver.ActionRestart)
	d.Once(0)

	bot := autoplay.New()
	for !engine.IsGameOver() && pieces < maxPieces && ctx.Err() == nil {
		start := time.Now()
		for _, a := range bot.Plan(engine) {
			d.Send(a)
		}
		d.Once(0)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(start))
	}

	report.TotalFrames += d.Stats().Frames
	report.RecordGame(engine.Score())
	logger.Debug().
		Uint64("game", game).
		Uint32("score", engine.Score()).
		Int("lines", engine.Lines()).
		Int("pieces", pieces).
		Msg("game finished")
	return nil
}

// gameRandomizer gives every game its own reproducible sequence when a seed is
// configured.
func gameRandomizer(seed, game uint64) tetris.Option {
	if seed == 0 {
		return func(*tetris.Engine) {}
	}
	return tetris.WithSeed(seed + game)
}

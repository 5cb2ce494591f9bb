package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/plus3/tetromino/debugui"
	debugui_ebiten "github.com/plus3/tetromino/debugui/ebiten"
	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/config"
	"github.com/plus3/tetromino/internal/logging"
	"github.com/plus3/tetromino/tetris"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
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

	engine, err := tetris.New(cfg.Width, cfg.Height, cfg.EngineOptions()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create engine")
	}
	engine.NewGame()

	d := driver.New(engine, driver.WithLogger(logger))
	gravity := &driver.GravitySystem{Interval: cfg.DropInterval, LevelLines: cfg.LevelLines}
	game := &Game{driver: d, gravity: gravity}

	width, height := screenSize(cfg.Width, cfg.Height)
	var imguiState *debugui.ImguiInputState
	if cfg.DebugUI {
		game.imgui = debugui_ebiten.NewImguiBackend("Tetromino", width+640, height)

		stats := debugui.NewPerformanceStats(120)
		timer := debugui.NewFrameTimer()
		inspector := debugui.NewEngineInspector(d)

		imguiSystem := &debugui.ImguiSystem{}
		imguiSystem.Add(func() { stats.Render(d, timer.GetDeltaTime()) })
		imguiSystem.Add(inspector.Render)
		imguiSystem.Add(func() {
			imgui.Begin("Controls")
			imgui.Text("Arrows move, Up/Z rotate")
			imgui.Text("Space drops, R restarts, Esc quits")
			imgui.End()
		})
		d.Register(imguiSystem)
		imguiState = &imguiSystem.InputState
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Tetromino")
	}

	d.Register(NewInputSystem(imguiState))
	d.Register(gravity)

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Uint64("seed", cfg.Seed).
		Bool("debug", cfg.DebugUI).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil {
		logger.Error().Err(err).Msg("game exited")
	}
}

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetromino/tetris"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ParseConfig(newFlagSet(), nil)
		require.NoError(t, err)

		assert.Equal(t, Config{
			Width:        10,
			Height:       20,
			DropInterval: time.Second,
			LevelLines:   10,
			LogLevel:     "info",
			Sound:        true,
		}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("TETROMINO_WIDTH", "12")
		t.Setenv("TETROMINO_SEED", "7")
		t.Setenv("TETROMINO_DROP_INTERVAL", "750ms")
		t.Setenv("TETROMINO_DEBUG_UI", "true")

		cfg, err := ParseConfig(newFlagSet(), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Width)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, 750*time.Millisecond, cfg.DropInterval)
		assert.True(t, cfg.DebugUI)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("TETROMINO_WIDTH", "12")
		t.Setenv("TETROMINO_SOUND", "true")

		cfg, err := ParseConfig(newFlagSet(), []string{"-width", "8", "-sound=false", "-log-level", "debug"})
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Width)
		assert.False(t, cfg.Sound)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("malformed environment", func(t *testing.T) {
		t.Setenv("TETROMINO_HEIGHT", "tall")

		_, err := ParseConfig(newFlagSet(), nil)
		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-colour"})
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseConfig(newFlagSet(), []string{"-width", "0", "-drop-interval", "0s", "-level-lines", "-1"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "board size 0x20")
		assert.ErrorContains(t, err, "drop interval")
		assert.ErrorContains(t, err, "level lines")
	})
}

func TestEngineOptions(t *testing.T) {
	assert.Empty(t, Config{}.EngineOptions())

	cfg := Config{Width: 10, Height: 20, Seed: 99}
	a, err := tetris.New(cfg.Width, cfg.Height, cfg.EngineOptions()...)
	require.NoError(t, err)
	b, err := tetris.New(cfg.Width, cfg.Height, cfg.EngineOptions()...)
	require.NoError(t, err)

	for range 20 {
		a.SpawnPiece()
		b.SpawnPiece()
		pa, _ := a.Active()
		pb, _ := b.Active()
		require.Equal(t, pa, pb)
	}
}

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/plus3/tetromino/tetris"
)

const sampleRate = beep.SampleRate(44100)

// tone is a single note.
type tone struct {
	freq     float64
	duration time.Duration
}

// clearTone returns the note played for clearing lines rows at once. Bigger
// clears play higher and longer.
func clearTone(lines int) (tone, bool) {
	if lines <= 0 {
		return tone{}, false
	}
	return tone{
		freq:     440 * float64(lines+1) / 2,
		duration: time.Duration(60+40*lines) * time.Millisecond,
	}, true
}

var gameOverTone = tone{freq: 110, duration: 400 * time.Millisecond}

// sound plays tones for lock events.
type sound struct {
	enabled bool
	logger  zerolog.Logger
}

func newSound(enabled bool, logger zerolog.Logger) *sound {
	s := &sound{logger: logger}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
		return s
	}
	s.enabled = true
	return s
}

// onLock is installed as the engine's lock handler.
func (s *sound) onLock(ev tetris.LockEvent) {
	if ev.GameOver {
		s.play(gameOverTone)
		return
	}
	if t, ok := clearTone(ev.Lines); ok {
		s.play(t)
	}
}

func (s *sound) play(t tone) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		s.logger.Debug().Err(err).Float64("freq", t.freq).Msg("tone rejected")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}

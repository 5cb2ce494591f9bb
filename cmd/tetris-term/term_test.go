package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/palette"
	"github.com/plus3/tetromino/tetris"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want driver.Action
		ok   bool
	}{
		{"left", tcell.KeyLeft, 0, driver.ActionLeft, true},
		{"right", tcell.KeyRight, 0, driver.ActionRight, true},
		{"up", tcell.KeyUp, 0, driver.ActionRotate, true},
		{"down", tcell.KeyDown, 0, driver.ActionDown, true},
		{"space", tcell.KeyRune, ' ', driver.ActionDrop, true},
		{"restart", tcell.KeyRune, 'r', driver.ActionRestart, true},
		{"z", tcell.KeyRune, 'z', driver.ActionRotate, true},
		{"other rune", tcell.KeyRune, 'x', 0, false},
		{"enter", tcell.KeyEnter, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := actionForKey(tt.key, tt.ch)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.KeyEscape, 0))
	assert.True(t, isQuit(tcell.KeyCtrlC, 0))
	assert.True(t, isQuit(tcell.KeyRune, 'q'))
	assert.False(t, isQuit(tcell.KeyRune, 'r'))
	assert.False(t, isQuit(tcell.KeyLeft, 0))
}

func TestClearTone(t *testing.T) {
	_, ok := clearTone(0)
	assert.False(t, ok)

	prev := tone{}
	for lines := 1; lines <= 4; lines++ {
		got, ok := clearTone(lines)
		require.True(t, ok)
		assert.Greater(t, got.freq, prev.freq)
		assert.Greater(t, got.duration, prev.duration)
		prev = got
	}

	one, _ := clearTone(1)
	assert.Equal(t, 440.0, one.freq)
	assert.Equal(t, 100*time.Millisecond, one.duration)
}

func TestSoundDisabled(t *testing.T) {
	s := newSound(false, zerolog.Nop())
	assert.False(t, s.enabled)
	s.onLock(tetris.LockEvent{Lines: 4})
	s.onLock(tetris.LockEvent{GameOver: true})
	s.close()
}

func TestRendererDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 10)

	engine, err := tetris.New(4, 4, tetris.WithRandomizer(tetris.SequenceOf(tetris.O)))
	require.NoError(t, err)
	engine.NewGame()

	r := &renderer{screen: screen, gravity: &driver.GravitySystem{Interval: time.Second}}
	r.draw(engine)

	// The O piece spawns at columns 1 and 2 of the top row.
	_, _, style, _ := screen.GetContent(boardLeft+1*cellWidth, boardTop)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewHexColor(int32(palette.Hex(tetris.O))), bg)

	_, _, style, _ = screen.GetContent(boardLeft, boardTop)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewHexColor(int32(palette.Hex(tetris.Empty))), bg)

	// Its ghost sits on the floor.
	ch, _, style, _ := screen.GetContent(boardLeft+1*cellWidth, boardTop+3)
	assert.Equal(t, '░', ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewHexColor(int32(palette.Hex(tetris.O))), fg)

	ch, _, _, _ = screen.GetContent(boardLeft+4*cellWidth+3, boardTop)
	assert.Equal(t, 'S', ch)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(finished)
	}()

	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt(nil)))
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pollEvents kept blocking after done was closed")
	}
	_, open := <-events
	assert.False(t, open)
}

func TestPollEventsForwards(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt("tick")))
	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			if interrupt, ok := ev.(*tcell.EventInterrupt); ok {
				assert.Equal(t, "tick", interrupt.Data())
				screen.Fini()
				return
			}
		case <-timeout:
			t.Fatal("no event forwarded")
		}
	}
}

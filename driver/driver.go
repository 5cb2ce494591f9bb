// Package driver runs a tetris.Engine frame by frame. It owns the engine,
// queues player input between frames, executes registered systems such as
// gravity, and keeps timing and action statistics.
package driver

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"

	"github.com/plus3/tetromino/tetris"
)

// Stats provides statistics about driver execution.
type Stats struct {
	Frames          int64
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
	Actions         []ActionStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// ActionStats counts how often an action was applied or rejected by the
// engine.
type ActionStats struct {
	Action   Action
	Applied  int64
	Rejected int64
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for game lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// Driver manages the engine and executes systems in registration order.
type Driver struct {
	engine      *tetris.Engine
	systems     []System
	systemStats []*systemStatsInternal
	pending     []Action
	frames      int64

	applied  *intmap.Map[Action, int64]
	rejected *intmap.Map[Action, int64]

	logger   zerolog.Logger
	gameOver bool
}

// New creates a driver for engine.
func New(engine *tetris.Engine, opts ...Option) *Driver {
	d := &Driver{
		engine:   engine,
		systems:  make([]System, 0),
		applied:  intmap.New[Action, int64](int(numActions)),
		rejected: intmap.New[Action, int64](int(numActions)),
		logger:   zerolog.Nop(),
		gameOver: engine.IsGameOver(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Engine returns the driven engine.
func (d *Driver) Engine() *tetris.Engine {
	return d.engine
}

// Register adds a system to the end of the execution order.
func (d *Driver) Register(system System) {
	if system == nil {
		panic("cannot register nil system")
	}
	d.systems = append(d.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	d.systemStats = append(d.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Send queues an action for the next frame. Queued actions are applied before
// anything systems push during that frame.
func (d *Driver) Send(a Action) {
	d.pending = append(d.pending, a)
}

// Once executes all registered systems once with the given delta time in
// seconds, then applies the frame's commands.
func (d *Driver) Once(dt float64) {
	frame := newFrame(dt, d.engine)
	for _, a := range d.pending {
		frame.Commands.Push(a)
	}
	d.pending = d.pending[:0]

	for i, system := range d.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := d.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(d.engine, d.observe)
	d.frames++
}

// Run executes frames at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Once(dt)
		}
	}
}

func (d *Driver) observe(a Action, ok bool) {
	counts := d.rejected
	if ok {
		counts = d.applied
	}
	n, _ := counts.Get(a)
	counts.Put(a, n+1)

	if a == ActionRestart {
		d.gameOver = false
		d.logger.Info().
			Int("width", d.engine.Width()).
			Int("height", d.engine.Height()).
			Msg("new game")
	}

	over := d.engine.IsGameOver()
	if over && !d.gameOver {
		d.logger.Info().
			Uint32("score", d.engine.Score()).
			Int("lines", d.engine.Lines()).
			Stringer("action", a).
			Msg("game over")
	}
	d.gameOver = over
}

// Stats returns statistics about system execution and applied actions.
func (d *Driver) Stats() *Stats {
	stats := &Stats{
		Frames:      d.frames,
		SystemCount: len(d.systems),
		Systems:     make([]SystemStats, len(d.systemStats)),
		Actions:     make([]ActionStats, 0, numActions),
	}

	var totalExecs int64
	for i, internal := range d.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}
	stats.TotalExecutions = totalExecs

	for _, a := range Actions() {
		applied, _ := d.applied.Get(a)
		rejected, _ := d.rejected.Get(a)
		stats.Actions = append(stats.Actions, ActionStats{
			Action:   a,
			Applied:  applied,
			Rejected: rejected,
		})
	}

	return stats
}

package driver

import "time"

const minGravityInterval = 50 * time.Millisecond

// GravitySystem pushes a Down action each time Interval elapses. When
// LevelLines is positive the level rises by one every LevelLines cleared rows
// and each level adds 10% of the base speed.
type GravitySystem struct {
	Interval   time.Duration
	LevelLines int

	accumulator float64
}

// Level returns the level reached after clearing lines rows.
func (g *GravitySystem) Level(lines int) int {
	if g.LevelLines <= 0 {
		return 1
	}
	return lines/g.LevelLines + 1
}

// IntervalAt returns the fall interval after clearing lines rows.
func (g *GravitySystem) IntervalAt(lines int) time.Duration {
	speed := 1.0 + float64(g.Level(lines)-1)*0.1
	interval := time.Duration(float64(g.Interval) / speed)
	if interval < minGravityInterval {
		return minGravityInterval
	}
	return interval
}

func (g *GravitySystem) Execute(frame *Frame) {
	if frame.Engine.IsGameOver() {
		g.accumulator = 0
		return
	}

	g.accumulator += frame.DeltaTime
	if g.accumulator >= g.IntervalAt(frame.Engine.Lines()).Seconds() {
		g.accumulator = 0
		frame.Commands.Push(ActionDown)
	}
}

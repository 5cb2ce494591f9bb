// Package autoplay is a simple placement bot. For the falling piece it tries
// every rotation and column, simulates the hard drop on a scratch engine and
// scores the resulting board.
package autoplay

import (
	"math"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/tetris"
)

// Weights are the coefficients of the board evaluation. Positive weights
// reward a feature, negative weights penalize it.
type Weights struct {
	Lines     float64
	Height    float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights favour flat, hole-free boards.
var DefaultWeights = Weights{
	Lines:     0.76,
	Height:    -0.51,
	Holes:     -0.36,
	Bumpiness: -0.18,
}

const gameOverScore = -1e9

// Placement is a candidate final position for the falling piece.
type Placement struct {
	Rotations int
	Shift     int
	Score     float64
}

// Bot chooses placements.
type Bot struct {
	Weights Weights

	scratch *tetris.Engine
}

// New creates a bot with DefaultWeights.
func New() *Bot {
	return &Bot{Weights: DefaultWeights}
}

// Best returns the highest scoring placement for the engine's falling piece.
// It reports false when there is nothing to place.
func (b *Bot) Best(engine *tetris.Engine) (Placement, bool) {
	if _, ok := engine.Active(); !ok || engine.IsGameOver() {
		return Placement{}, false
	}

	snap := engine.Snapshot()
	sim := b.scratchFor(engine)

	best := Placement{Score: math.Inf(-1)}
	found := false
	for rotations := range 4 {
		if !b.reset(sim, snap, rotations) {
			continue
		}

		lefts := 0
		for sim.MoveLeft() {
			lefts++
		}
		rights := 0
		for sim.MoveRight() {
			rights++
		}

		for shift := -lefts; shift <= rights; shift++ {
			b.reset(sim, snap, rotations)
			if !move(sim, shift) {
				continue
			}
			sim.HardDrop()

			score := b.score(sim, snap)
			if score > best.Score {
				best = Placement{Rotations: rotations, Shift: shift, Score: score}
				found = true
			}
		}
	}
	return best, found
}

// Plan returns the actions that carry out the best placement, ending with a
// hard drop. It returns nil when there is nothing to place.
func (b *Bot) Plan(engine *tetris.Engine) []driver.Action {
	p, ok := b.Best(engine)
	if !ok {
		return nil
	}

	actions := make([]driver.Action, 0, p.Rotations+abs(p.Shift)+1)
	for range p.Rotations {
		actions = append(actions, driver.ActionRotate)
	}
	step := driver.ActionRight
	if p.Shift < 0 {
		step = driver.ActionLeft
	}
	for range abs(p.Shift) {
		actions = append(actions, step)
	}
	return append(actions, driver.ActionDrop)
}

func (b *Bot) scratchFor(engine *tetris.Engine) *tetris.Engine {
	if b.scratch != nil && b.scratch.Width() == engine.Width() && b.scratch.Height() == engine.Height() {
		return b.scratch
	}
	// The scratch engine only ever simulates one lock, so its spawn choice is
	// irrelevant.
	sim, err := tetris.New(engine.Width(), engine.Height(), tetris.WithRandomizer(tetris.NewSequence(0)))
	if err != nil {
		panic(err)
	}
	b.scratch = sim
	return sim
}

func (b *Bot) reset(sim *tetris.Engine, snap tetris.Snapshot, rotations int) bool {
	if err := sim.Restore(snap); err != nil {
		panic(err)
	}
	for range rotations {
		if !sim.Rotate() {
			return false
		}
	}
	return true
}

func (b *Bot) score(sim *tetris.Engine, before tetris.Snapshot) float64 {
	if sim.IsGameOver() {
		return gameOverScore
	}

	f := Evaluate(sim.Snapshot())
	lines := sim.Lines() - before.Lines
	return b.Weights.Lines*float64(lines) +
		b.Weights.Height*float64(f.AggregateHeight) +
		b.Weights.Holes*float64(f.Holes) +
		b.Weights.Bumpiness*float64(f.Bumpiness)
}

func move(sim *tetris.Engine, shift int) bool {
	for ; shift < 0; shift++ {
		if !sim.MoveLeft() {
			return false
		}
	}
	for ; shift > 0; shift-- {
		if !sim.MoveRight() {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package driver

import "github.com/plus3/tetromino/tetris"

// Action is a single command for the engine, either player input or a gravity
// step.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionDown
	ActionDrop
	ActionRestart

	numActions
)

var actionNames = [numActions]string{"left", "right", "rotate", "down", "drop", "restart"}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, numActions)
	for a := range numActions {
		out = append(out, a)
	}
	return out
}

func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return "unknown"
}

// Apply runs a against the engine. The result is the engine's own answer for
// moves; Drop reports whether a piece was in play and Restart always succeeds.
func Apply(engine *tetris.Engine, a Action) bool {
	switch a {
	case ActionLeft:
		return engine.MoveLeft()
	case ActionRight:
		return engine.MoveRight()
	case ActionRotate:
		return engine.Rotate()
	case ActionDown:
		return engine.MoveDown()
	case ActionDrop:
		if _, ok := engine.Active(); !ok || engine.IsGameOver() {
			return false
		}
		engine.HardDrop()
		return true
	case ActionRestart:
		engine.NewGame()
		return true
	}
	return false
}

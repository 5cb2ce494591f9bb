package driver

import "github.com/plus3/tetromino/tetris"

// Commands buffers actions and deferred calls for the end of a frame, so that
// systems observe a stable engine state while they run.
type Commands struct {
	actions []Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an action.
func (c *Commands) Push(a Action) {
	c.actions = append(c.actions, a)
}

// Defer queues a function call. Deferred calls run after all actions.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies queued actions in order, then runs deferred calls, and resets
// the buffer. observe, if not nil, receives every action with its result.
func (c *Commands) Flush(engine *tetris.Engine, observe func(Action, bool)) {
	for _, a := range c.actions {
		ok := Apply(engine, a)
		if observe != nil {
			observe(a, ok)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}

package driver

import "github.com/plus3/tetromino/tetris"

// System is a unit of per-frame behaviour. Systems may read the engine freely
// but should change it only through frame.Commands.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the state handed to systems for one update.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Engine    *tetris.Engine
}

func newFrame(dt float64, engine *tetris.Engine) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    engine,
	}
}

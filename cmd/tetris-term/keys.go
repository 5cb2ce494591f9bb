package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetromino/driver"
)

// actionForKey maps a key press to a driver action. ch is only consulted
// for tcell.KeyRune.
func actionForKey(key tcell.Key, ch rune) (driver.Action, bool) {
	switch key {
	case tcell.KeyLeft:
		return driver.ActionLeft, true
	case tcell.KeyRight:
		return driver.ActionRight, true
	case tcell.KeyUp:
		return driver.ActionRotate, true
	case tcell.KeyDown:
		return driver.ActionDown, true
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return driver.ActionDrop, true
		case 'r', 'R':
			return driver.ActionRestart, true
		case 'z', 'Z':
			return driver.ActionRotate, true
		}
	}
	return 0, false
}

// isQuit reports whether the key press should end the program.
func isQuit(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}

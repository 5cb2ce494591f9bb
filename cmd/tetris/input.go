package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetromino/debugui"
	"github.com/plus3/tetromino/driver"
)

const (
	repeatDelay  = 0.2
	repeatRate   = 0.05
	softDropRate = 0.05
)

// keyRepeat turns a held key into repeated presses after an initial delay.
type keyRepeat struct {
	held  float64
	delay float64
	rate  float64
}

// update reports whether the key fires this frame.
func (k *keyRepeat) update(dt float64, pressed, down bool) bool {
	switch {
	case pressed:
		k.held = 0
		return true
	case down:
		k.held += dt
		if k.held > k.delay {
			k.held -= k.rate
			return true
		}
		return false
	default:
		k.held = 0
		return false
	}
}

// InputSystem reads the keyboard and queues driver actions.
type InputSystem struct {
	Imgui *debugui.ImguiInputState

	left  keyRepeat
	right keyRepeat
	down  keyRepeat
}

func NewInputSystem(imgui *debugui.ImguiInputState) *InputSystem {
	return &InputSystem{
		Imgui: imgui,
		left:  keyRepeat{delay: repeatDelay, rate: repeatRate},
		right: keyRepeat{delay: repeatDelay, rate: repeatRate},
		down:  keyRepeat{delay: softDropRate, rate: softDropRate},
	}
}

func (s *InputSystem) Execute(frame *driver.Frame) {
	if s.Imgui != nil && s.Imgui.WantCaptureKeyboard {
		return
	}

	for _, a := range s.poll(frame.DeltaTime, keyState) {
		frame.Commands.Push(a)
	}
}

// keyStateFunc reports whether key was pressed this tick and whether it is held.
type keyStateFunc func(key ebiten.Key) (pressed, down bool)

func keyState(key ebiten.Key) (bool, bool) {
	return inpututil.IsKeyJustPressed(key), ebiten.IsKeyPressed(key)
}

func (s *InputSystem) poll(dt float64, state keyStateFunc) []driver.Action {
	var actions []driver.Action
	if pressed, _ := state(ebiten.KeyR); pressed {
		return append(actions, driver.ActionRestart)
	}

	if pressed, down := state(ebiten.KeyLeft); s.left.update(dt, pressed, down) {
		actions = append(actions, driver.ActionLeft)
	}
	if pressed, down := state(ebiten.KeyRight); s.right.update(dt, pressed, down) {
		actions = append(actions, driver.ActionRight)
	}
	if pressed, down := state(ebiten.KeyDown); s.down.update(dt, pressed, down) {
		actions = append(actions, driver.ActionDown)
	}
	if up, _ := state(ebiten.KeyUp); up {
		actions = append(actions, driver.ActionRotate)
	} else if z, _ := state(ebiten.KeyZ); z {
		actions = append(actions, driver.ActionRotate)
	}
	if pressed, _ := state(ebiten.KeySpace); pressed {
		actions = append(actions, driver.ActionDrop)
	}
	return actions
}

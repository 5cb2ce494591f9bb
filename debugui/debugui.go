// Package debugui provides Dear ImGui panels for inspecting a running engine.
// Panels are registered with an ImguiSystem, which runs as a driver system and
// defers their rendering to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetromino/driver"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends should skip their own input handling while it is.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add registers a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions.
func (i *ImguiSystem) Execute(frame *driver.Frame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

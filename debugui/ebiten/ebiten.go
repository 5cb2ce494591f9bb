// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before the driver runs its systems, EndFrame after, and
// Draw once the game itself has been drawn.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The ImGui ini file is
// disabled so panel layout is not persisted between runs.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

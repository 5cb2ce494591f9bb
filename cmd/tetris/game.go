package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	debugui_ebiten "github.com/plus3/tetromino/debugui/ebiten"
	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/palette"
	"github.com/plus3/tetromino/tetris"
)

const (
	cellSize   = 30
	cellGap    = 1
	margin     = 20
	panelWidth = 160
	ghostAlpha = 0x50
)

var outlineColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

// Game implements ebiten.Game on top of a driver.
type Game struct {
	driver  *driver.Driver
	gravity *driver.GravitySystem
	imgui   *debugui_ebiten.ImguiBackend

	cells []tetris.Cell
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.driver.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.BackgroundRGBA())

	engine := g.driver.Engine()
	width, height := engine.Width(), engine.Height()

	vector.StrokeRect(screen, margin-2, margin-2,
		float32(width*cellSize+4), float32(height*cellSize+4), 2, outlineColor, false)

	g.cells = engine.AppendBoard(g.cells[:0])
	for i, c := range g.cells {
		drawCell(screen, i%width, i/width, palette.RGBA(c, 0xFF))
	}

	if active, ok := engine.Active(); ok && !engine.IsGameOver() {
		if ghostY, ok := engine.GhostY(); ok && ghostY != active.Y {
			for r := range active.Rows() {
				for c := range active.Cols() {
					if kind := active.At(r, c); !kind.IsEmpty() {
						drawCell(screen, active.X+c, ghostY+r, palette.RGBA(kind, ghostAlpha))
					}
				}
			}
		}
	}

	panelX := margin*2 + width*cellSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", engine.Score()), panelX, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", engine.Lines()), panelX, margin+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", g.gravity.Level(engine.Lines())), panelX, margin+40)
	if engine.IsGameOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", panelX, margin+80)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", panelX, margin+100)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	engine := g.driver.Engine()
	return screenSize(engine.Width(), engine.Height())
}

// screenSize returns the window size needed for a width x height board.
func screenSize(width, height int) (int, int) {
	return margin*3 + width*cellSize + panelWidth, margin*2 + height*cellSize
}

// drawCell fills grid cell (x, y) unless it lies above the board.
func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	if x < 0 || y < 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(margin+x*cellSize+cellGap), float32(margin+y*cellSize+cellGap),
		cellSize-2*cellGap, cellSize-2*cellGap, clr, false)
}

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/internal/palette"
	"github.com/plus3/tetromino/tetris"
)

const (
	// Each cell is two columns wide so the board looks square.
	cellWidth = 2
	boardLeft = 2
	boardTop  = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// renderer draws an engine onto a tcell screen.
type renderer struct {
	screen  tcell.Screen
	gravity *driver.GravitySystem
	cells   []tetris.Cell
}

func cellStyle(c tetris.Cell) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewHexColor(int32(palette.Hex(c))))
}

func ghostStyle(c tetris.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(palette.Hex(c))))
}

func (r *renderer) draw(engine *tetris.Engine) {
	r.screen.Clear()

	width, height := engine.Width(), engine.Height()
	right := boardLeft + width*cellWidth
	for y := boardTop - 1; y <= boardTop+height; y++ {
		r.screen.SetContent(boardLeft-1, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := boardLeft - 1; x <= right; x++ {
		r.screen.SetContent(x, boardTop+height, '─', nil, frameStyle)
	}
	r.screen.SetContent(boardLeft-1, boardTop+height, '└', nil, frameStyle)
	r.screen.SetContent(right, boardTop+height, '┘', nil, frameStyle)

	r.cells = engine.AppendBoard(r.cells[:0])
	for i, c := range r.cells {
		r.setCell(i%width, i/width, ' ', cellStyle(c))
	}

	if active, ok := engine.Active(); ok && !engine.IsGameOver() {
		if ghostY, ok := engine.GhostY(); ok && ghostY != active.Y {
			for row := range active.Rows() {
				for col := range active.Cols() {
					x, y := active.X+col, ghostY+row
					if kind := active.At(row, col); !kind.IsEmpty() && r.cells[y*width+x].IsEmpty() {
						r.setCell(x, y, '░', ghostStyle(kind))
					}
				}
			}
		}
	}

	panel := right + 3
	r.text(panel, boardTop, textStyle, fmt.Sprintf("Score: %d", engine.Score()))
	r.text(panel, boardTop+1, textStyle, fmt.Sprintf("Lines: %d", engine.Lines()))
	r.text(panel, boardTop+2, textStyle, fmt.Sprintf("Level: %d", r.gravity.Level(engine.Lines())))
	if engine.IsGameOver() {
		r.text(panel, boardTop+4, alertStyle, "GAME OVER")
		r.text(panel, boardTop+5, textStyle, "r to restart")
	}
	r.text(panel, boardTop+height-1, frameStyle, "q quits")

	r.screen.Show()
}

func (r *renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	for i := range cellWidth {
		r.screen.SetContent(boardLeft+x*cellWidth+i, boardTop+y, ch, nil, style)
	}
}

func (r *renderer) text(x, y int, style tcell.Style, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

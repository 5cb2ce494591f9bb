package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetromino/driver"
	"github.com/plus3/tetromino/tetris"
)

// EngineInspector shows the engine state and action counters of a driver.
type EngineInspector struct {
	Driver *driver.Driver
}

func NewEngineInspector(d *driver.Driver) *EngineInspector {
	return &EngineInspector{Driver: d}
}

func (ei *EngineInspector) Render() {
	if !imgui.BeginV("Engine Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := ei.Driver.Engine()
	snap := engine.Snapshot()

	imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Width, snap.Height))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Game Over: %v", snap.GameOver))
	if imgui.Button("New Game") {
		ei.Driver.Send(driver.ActionRestart)
	}

	imgui.Separator()
	if snap.HasPiece {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", snap.Active.Kind(), snap.Active.X, snap.Active.Y))
		if ghost, ok := engine.GhostY(); ok {
			imgui.SameLine()
			imgui.Text(fmt.Sprintf("ghost y=%d", ghost))
		}
		for _, line := range strings.Split(snap.Active.Piece.String(), "\n") {
			imgui.Text(line)
		}
	} else {
		imgui.Text("Active: none")
	}

	if imgui.TreeNodeStr("Row Occupancy") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowOccupancyTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Cells")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for y, filled := range RowOccupancy(snap) {
				if filled == 0 {
					continue
				}
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", y))
				imgui.TableNextColumn()
				imgui.Text(rowText(snap, y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", filled, snap.Width))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Actions") {
		for _, a := range ei.Driver.Stats().Actions {
			imgui.BulletText(fmt.Sprintf("%s: %d applied, %d rejected", a.Action, a.Applied, a.Rejected))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// RowOccupancy returns the number of settled cells in each row of s.
func RowOccupancy(s tetris.Snapshot) []int {
	counts := make([]int, s.Height)
	for i, c := range s.Cells {
		if !c.IsEmpty() {
			counts[i/s.Width]++
		}
	}
	return counts
}

func rowText(s tetris.Snapshot, y int) string {
	var sb strings.Builder
	for _, c := range s.Cells[y*s.Width : (y+1)*s.Width] {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}

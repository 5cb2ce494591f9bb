package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetromino/driver"
)

// PerformanceStats shows frame times and per-system timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Record adds a frame time, in seconds, to the history.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded history in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(d *driver.Driver, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(deltaTime)
	stats := d.Stats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

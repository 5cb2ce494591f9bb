package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Width     int
	Height    int
	Seed      uint64
	MaxPieces int

	// Results
	Games         int
	Pieces        int64
	TotalLines    int64
	BestScore     uint32
	TotalScore    uint64
	LockHistogram *intmap.Map[int, int64]
	TotalFrames   int64
	TotalTime     time.Duration
	FrameTime     Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func NewReport() *Report {
	return &Report{
		LockHistogram: intmap.New[int, int64](8),
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
}

// RecordLock counts a lock that cleared lines rows.
func (r *Report) RecordLock(lines int) {
	n, _ := r.LockHistogram.Get(lines)
	r.LockHistogram.Put(lines, n+1)
	r.Pieces++
	r.TotalLines += int64(lines)
}

// RecordGame adds a finished game's score.
func (r *Report) RecordGame(score uint32) {
	r.Games++
	r.TotalScore += uint64(score)
	if score > r.BestScore {
		r.BestScore = score
	}
}

// Locks returns the histogram as a slice indexed by lines cleared.
func (r *Report) Locks() []int64 {
	out := make([]int64, 5)
	for lines := range out {
		out[lines], _ = r.LockHistogram.Get(lines)
	}
	return out
}

func (r *Report) AvgScore() uint64 {
	if r.Games == 0 {
		return 0
	}
	return r.TotalScore / uint64(r.Games)
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetromino Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Max Pieces Per Game:** {{.MaxPieces}}

## Games
- **Games Played:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{.AvgScore}}

## Locks By Lines Cleared
{{range $lines, $count := .Locks}}- {{$lines}}: {{$count}}
{{end}}
## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time (plan + apply):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}

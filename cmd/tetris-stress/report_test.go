package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReport(t *testing.T) {
	r := NewReport()
	r.Width, r.Height = 10, 20
	r.RecordLock(0)
	r.RecordLock(0)
	r.RecordLock(4)
	r.RecordGame(800)
	r.RecordGame(200)

	assert.Equal(t, []int64{2, 0, 0, 0, 1}, r.Locks())
	assert.Equal(t, int64(3), r.Pieces)
	assert.Equal(t, int64(4), r.TotalLines)
	assert.Equal(t, uint32(800), r.BestScore)
	assert.Equal(t, uint64(500), r.AvgScore())

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Board:** 10x20")
	assert.Contains(t, out, "**Games Played:** 2")
	assert.Contains(t, out, "- 4: 1\n")
	assert.Contains(t, out, "**Average Score:** 500")
}

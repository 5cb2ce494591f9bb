package autoplay

import "github.com/plus3/tetromino/tetris"

// Features summarises the settled part of a board.
type Features struct {
	Heights         []int
	AggregateHeight int
	Holes           int
	Bumpiness       int
}

// Evaluate measures the settled cells of s. The active piece is ignored.
func Evaluate(s tetris.Snapshot) Features {
	f := Features{Heights: make([]int, s.Width)}

	for x := 0; x < s.Width; x++ {
		top := -1
		for y := 0; y < s.Height; y++ {
			if s.Cells[y*s.Width+x].IsEmpty() {
				if top >= 0 {
					f.Holes++
				}
				continue
			}
			if top < 0 {
				top = y
			}
		}
		if top >= 0 {
			f.Heights[x] = s.Height - top
		}
		f.AggregateHeight += f.Heights[x]
	}

	for x := 1; x < s.Width; x++ {
		f.Bumpiness += abs(f.Heights[x] - f.Heights[x-1])
	}
	return f
}

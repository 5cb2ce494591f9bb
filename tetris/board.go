package tetris

// board is the grid of settled cells, rows[0] being the top row.
type board struct {
	width  int
	height int
	rows   [][]Cell
}

func newBoard(width, height int) board {
	b := board{width: width, height: height, rows: make([][]Cell, height)}
	cells := make([]Cell, width*height)
	for y := range b.rows {
		b.rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return b
}

func (b *board) reset() {
	for _, row := range b.rows {
		clear(row)
	}
}

func (b *board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *board) isFull(y int) bool {
	for _, cell := range b.rows[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// removeRow drops row y and pushes a fresh empty row in at the top. Rows above
// y move down by one; rows below y are untouched. The removed row's backing
// storage is recycled as the new top row.
func (b *board) removeRow(y int) {
	removed := b.rows[y]
	copy(b.rows[1:y+1], b.rows[:y])
	clear(removed)
	b.rows[0] = removed
}

// clearLines removes every full row and returns how many were removed. After a
// removal the same index is examined again, since a different row now sits
// there.
func (b *board) clearLines() int {
	cleared := 0
	y := 0
	for y < b.height {
		if b.isFull(y) {
			b.removeRow(y)
			cleared++
		} else {
			y++
		}
	}
	return cleared
}

func (b *board) appendCells(dst []Cell) []Cell {
	for _, row := range b.rows {
		dst = append(dst, row...)
	}
	return dst
}

var linePoints = [...]uint32{0, 100, 300, 500, 800}

// Points returns the score awarded for clearing lines rows with a single lock.
// Counts outside 0..4 score nothing.
func Points(lines int) uint32 {
	if lines < 0 || lines >= len(linePoints) {
		return 0
	}
	return linePoints[lines]
}
